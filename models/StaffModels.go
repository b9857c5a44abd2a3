package models

// Training levels
const (
	LevelSecondary     = "Secondary"
	LevelUniversity    = "University"
	LevelPostgraduate  = "Postgraduate"
	LevelDiploma       = "Diploma"
	LevelShortCourse   = "ShortCourse"
	LevelCertification = "Certification"
)

// TrainingLevels lists every valid training level. The empty string is also
// accepted on a Training record (level not chosen yet).
var TrainingLevels = []string{
	LevelSecondary, LevelUniversity, LevelPostgraduate,
	LevelDiploma, LevelShortCourse, LevelCertification,
}

// Training is a course record owned by a staff member. The attached file is
// stored inline as base64 together with its original filename.
type Training struct {
	ID         string  `json:"id" example:"tr-1718000000000"`
	CourseName string  `json:"course_name" example:"Working at Heights"`
	Level      string  `json:"level" example:"Certification"`
	File       *string `json:"file"`
	FileName   *string `json:"file_name" example:"certificate.pdf"`
}

// Staff represents one staff member. FullName is derived from FirstNames and
// LastNames on every save.
type Staff struct {
	ID                   string     `json:"id" example:"staff-1717000000000"`
	FirstNames           string     `json:"first_names" example:"Carlos"`
	LastNames            string     `json:"last_names" example:"Mendoza"`
	FullName             string     `json:"full_name" example:"Carlos Mendoza"`
	Nationality          string     `json:"nationality" example:"Salvadoran"`
	DocumentID           string     `json:"document_id" example:"04567890-1"`
	Passport             string     `json:"passport" example:"B1234567"`
	Photo                *string    `json:"photo"`
	BirthDate            string     `json:"birth_date" example:"1990-05-12"`
	Country              string     `json:"country" example:"El Salvador"`
	Department           string     `json:"department" example:"San Salvador"`
	Municipality         string     `json:"municipality" example:"San Salvador"`
	District             string     `json:"district" example:"Centro"`
	Address              string     `json:"address" example:"Col. Escalon, Calle 2 #45"`
	Phone                string     `json:"phone" example:"+503 7777 0000"`
	Email                string     `json:"email" example:"carlos.mendoza@example.com"`
	Username             string     `json:"username" example:"cmendoza"`
	Password             string     `json:"password"`
	ProjectRole          string     `json:"project_role" example:"Field Supervisor"`
	JobPosition          string     `json:"job_position" example:"Supervisor"`
	MonthlySalary        *float64   `json:"monthly_salary" example:"1200"`
	Afp                  string     `json:"afp" example:"Confia"`
	AfpNumber            string     `json:"afp_number" example:"123456789012"`
	SocialSecurityNumber string     `json:"social_security_number" example:"987654321"`
	Specialties          []string   `json:"specialties" example:"Fiber splicing,Tower climbing"`
	YearsExperience      *int       `json:"years_experience" example:"8"`
	ContactPerson        string     `json:"contact_person" example:"Ana Mendoza"`
	ContactPhone         string     `json:"contact_phone" example:"+503 7777 0001"`
	IsAllergic           bool       `json:"is_allergic" example:"false"`
	AllergyDetails       string     `json:"allergy_details"`
	YellowFeverVaccine   bool       `json:"yellow_fever_vaccine" example:"true"`
	IsDriver             bool       `json:"is_driver" example:"true"`
	DriverLicense        string     `json:"driver_license" example:"L-123456"`
	OperatorAuthorized   bool       `json:"operator_authorized" example:"false"`
	HasTrainings         bool       `json:"has_trainings" example:"true"`
	Trainings            []Training `json:"trainings"`
}

// UpdateTrainingRequest mutates one field of a training record. Field must be
// one of "course_name", "level", "file" or "file_name".
type UpdateTrainingRequest struct {
	Field string `json:"field" binding:"required" example:"course_name"`
	Value string `json:"value" example:"Working at Heights"`
}
