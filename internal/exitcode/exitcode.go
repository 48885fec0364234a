package exitcode

const (
	Success           = 0
	UsageError        = 1
	ValidationFailure = 2
	DataError         = 3
	FetchError        = 4
	StoreError        = 5
)
