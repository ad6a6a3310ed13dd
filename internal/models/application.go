package models

// ApplicationStatus tracks an SKPI application through review and printing.
// Values are the Indonesian labels displayed verbatim in the queues.
type ApplicationStatus string

const (
	ApplicationWaiting  ApplicationStatus = "Menunggu"
	ApplicationVerified ApplicationStatus = "Terverifikasi"
	ApplicationDone     ApplicationStatus = "Selesai"
)

// Application is a sample SKPI request submitted by a student.
type Application struct {
	ID          string            `json:"id"`
	StudentName string            `json:"student_name"`
	NIM         string            `json:"nim"`
	Prodi       string            `json:"prodi"`
	Status      ApplicationStatus `json:"status"`
}

// Reference is the printed document reference for the application.
func (a Application) Reference() string {
	return "#SKPI-" + a.ID
}
