package service

import "customer-onboarding/internal/ports"

const (
	outcomeSuccess   = "success"
	outcomeInvalid   = "invalid"
	outcomeDuplicate = "duplicate"
	outcomeError     = "error"

	referenceBranch      = "branch"
	referenceAccountType = "account_type"
)

type noopMetrics struct{}

func (noopMetrics) RecordRegistration(string)  {}
func (noopMetrics) RecordLogin(string)         {}
func (noopMetrics) RecordRefresh(string)       {}
func (noopMetrics) RecordAccountOpened()       {}
func (noopMetrics) RecordReferenceMiss(string) {}

func metricsOrNoop(recorder ports.MetricsRecorder) ports.MetricsRecorder {
	if recorder == nil {
		return noopMetrics{}
	}
	return recorder
}
