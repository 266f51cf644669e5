package sections

const (
	defaultWorkerCount = 4

	unclassifiedKind = "unclassified"
)
