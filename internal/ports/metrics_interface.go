package ports

type MetricsRecorder interface {
	RecordRegistration(outcome string)
	RecordLogin(outcome string)
	RecordRefresh(outcome string)
	RecordAccountOpened()
	RecordReferenceMiss(kind string)
}
