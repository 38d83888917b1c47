package constants

// The two artifacts every exported song folder contains. Playback only
// needs DataFilename; FormulasFilename is what gets pasted into the
// graphing calculator.
const DataFilename = "data.json"
const FormulasFilename = "formulas.txt"

const ConfigFilename = "config.toml"

// ReferencePitch is middle C. Formulas render pitches relative to it.
const ReferencePitch = 60

const ServeAddr = ":8080"
