package models

type ExportFormat string

const (
	ExportPDF      ExportFormat = "pdf"
	ExportWorkbook ExportFormat = "xlsx"
)

func (f ExportFormat) ContentType() string {
	switch f {
	case ExportWorkbook:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/pdf"
	}
}

// ExportRequest carries a full course object supplied by the client.
type ExportRequest struct {
	Course *Course `json:"course"`
}

type GradeRequest struct {
	Course  *Course       `json:"course"`
	Answers LessonAnswers `json:"answers"`
}

type GradeStoredRequest struct {
	Answers LessonAnswers `json:"answers"`
}
