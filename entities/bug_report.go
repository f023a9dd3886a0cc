package entities

type BugReport struct {
	ReportID          string `gorm:"primary_key" json:"reportId"`
	ReportedBy        string `gorm:"index" json:"reportedBy"`
	ScreenshotURL     string `json:"screenshotUrl"`
	ProblemType       string `json:"problemType"`
	ReportDescription string `gorm:"type:text" json:"reportDescription"`
	IsResolved        bool   `json:"isResolved"`

	Timestamp
}
