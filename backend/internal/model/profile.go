package model

// 기본값
const (
	DefaultGender = "미정"
	DefaultImage  = "default-profile.jpg"
)

// NormalInformation 구직자 기본 정보 (normal_information, 구직자당 1건)
type NormalInformation struct {
	JobSeekerID string `gorm:"type:varchar(15);primaryKey"           json:"job_seeker_id"`
	Image       string `gorm:"type:varchar(255);not null"            json:"image"`
	Name        string `gorm:"type:varchar(5);not null"              json:"name"`
	BirthDate   string `gorm:"type:char(8);not null"                 json:"birth_date"`
	Email       string `gorm:"type:varchar(50);not null"             json:"email"`
	Phone       string `gorm:"type:varchar(13);not null"             json:"phone"`
	Gender      string `gorm:"type:varchar(5);not null;default:'미정'" json:"gender"`

	JobSeeker *JobSeeker `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 테이블명
func (NormalInformation) TableName() string { return "normal_information" }

// GradeInformation 학력 정보 (grade_information, 구직자당 1건)
type GradeInformation struct {
	JobSeekerID      string `gorm:"type:varchar(15);primaryKey"      json:"-"`
	UniversityType   string `gorm:"type:varchar(20);not null"        json:"university_type"`
	SchoolName       string `gorm:"type:varchar(30);not null"        json:"school_name"`
	Region           string `gorm:"type:varchar(30);not null;default:''" json:"region"`
	AdmissionDate    string `gorm:"type:char(7);not null"            json:"admission_date"`
	GraduationDate   string `gorm:"type:char(7);not null"            json:"graduation_date"`
	GraduationStatus string `gorm:"type:varchar(10);not null"        json:"graduation_status"`
	Major            string `gorm:"type:varchar(15);not null"        json:"major"`

	JobSeeker *JobSeeker `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 테이블명
func (GradeInformation) TableName() string { return "grade_information" }

// ExperienceActivity 경험/활동/교육 (experience_activities, 구직자당 여러 건)
type ExperienceActivity struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"          json:"id"`
	JobSeekerID  string `gorm:"type:varchar(15);not null;index"   json:"-"`
	ActivityType string `gorm:"type:varchar(10);not null"         json:"activity_type"`
	Organization string `gorm:"type:varchar(20);not null"         json:"organization"`
	StartDate    string `gorm:"type:char(7);not null"             json:"start_date"`
	EndDate      string `gorm:"type:char(7);not null"             json:"end_date"`
	Description  string `gorm:"type:varchar(500);not null"        json:"description"`

	JobSeeker *JobSeeker `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 테이블명
func (ExperienceActivity) TableName() string { return "experience_activities" }
