package common

// SlcVersion is the current compiler version as a string.
const SlcVersion string = "0.1.0"

// SlcProfileFileName is the name for build profile files.
const SlcProfileFileName string = "slc.toml"

// SlcFileExt is the file extension for a SimpleLang source file.
const SlcFileExt string = ".sl"

// StdioPath is the path which denotes standard input when given as a source
// path and standard output when given as an output path.
const StdioPath string = "-"
