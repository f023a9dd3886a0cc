package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreateBugReport  = "bug report submitted successfully"
	MessageSuccessGetBugReports    = "success get bug reports"
	MessageSuccessResolveBugReport = "bug report resolved successfully"

	MessageFailedCreateBugReport  = "failed to submit bug report"
	MessageFailedGetBugReports    = "failed to get bug reports"
	MessageFailedResolveBugReport = "failed to resolve bug report"

	ErrBugReportNotFound = errors.New("bug report not found")
)

type (
	CreateBugReportRequest struct {
		ProblemType       string                `json:"problemType" validate:"required"`
		ReportDescription string                `json:"reportDescription" validate:"required"`
		Screenshot        *multipart.FileHeader `validate:"required"`
	}
)
