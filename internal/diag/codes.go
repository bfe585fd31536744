package diag

// Diagnostic code constants organized by phase
// E001-E099: reader errors
// E101-E199: annotation and classification errors
// E201-E299: repetition parser errors
// E301-E399: synthesis errors

const (
	// Reader errors (E001-E099)
	CodeUnsupportedShape   = "E001"
	CodeMalformedTag       = "E002"
	CodeMalformedDirective = "E003"
	CodeUnknownDirective   = "E004"

	// Annotation and classification errors (E101-E199)
	CodeUnknownAnnotationKey   = "E101"
	CodeConflictingAnnotation  = "E102"
	CodeEmptyAnnotationValue   = "E103"
	CodeRepeatedNotSlice       = "E104"
	CodeBadSetterName          = "E105"

	// Repetition parser errors (E201-E299)
	CodeRepeatSyntax = "E201"

	// Synthesis errors (E301-E399)
	CodeBadCustomBound = "E301"
	CodeUnformattable  = "E302"
)
