package validation

import "regexp"

// 필드명 (요청 JSON 키와 동일)
const (
	FieldStudentID       = "studentId"
	FieldID              = "id"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldDepartmentName  = "departmentName"

	FieldTitle               = "title"
	FieldContents            = "contents"
	FieldCompanyName         = "companyName"
	FieldLocation            = "location"
	FieldQualificationType   = "qualificationType"
	FieldWorkPeriodStart     = "workPeriodStart"
	FieldWorkPeriodEnd       = "workPeriodEnd"
	FieldRecruitmentDeadline = "recruitmentDeadline"
	FieldHourlyWage          = "hourlyWage"
	FieldApplicationMethod   = "applicationMethod"
	FieldContactNumber       = "contactNumber"

	FieldName      = "name"
	FieldBirthDate = "birthDate"
	FieldPhone     = "phone"

	FieldPhoneNumber = "phone_number"

	FieldUniversityType   = "universityType"
	FieldSchoolName       = "schoolName"
	FieldAdmissionDate    = "admissionDate"
	FieldGraduationDate   = "graduationDate"
	FieldGraduationStatus = "graduationStatus"
	FieldMajor            = "major"

	FieldActivityType = "activityType"
	FieldOrganization = "organization"
	FieldStartDate    = "startDate"
	FieldEndDate      = "endDate"
	FieldDescription  = "description"
)

var (
	emailPattern         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern        = regexp.MustCompile(`^\d+$`)
	dayPattern           = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	contactPattern       = regexp.MustCompile(`^\d{2,3}-\d{3,4}-\d{4}$`)
	employerPhonePattern = regexp.MustCompile(`^[0-9-]+$`)
	birthDatePattern     = regexp.MustCompile(`^\d{8}$`)
	mobilePattern        = regexp.MustCompile(`^\d{3}\d{3,4}\d{4}$`)
	monthDotPattern      = regexp.MustCompile(`^\d{4}\.(0[1-9]|1[0-2])$`)
	monthDashPattern     = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// 선택 목록
var (
	UniversityTypes  = []string{"대학(2,3년)", "대학교(4년)", "대학원(석사)", "대학원(박사)"}
	GraduationStatus = []string{"졸업", "재학중", "휴학중", "수료", "중퇴", "자퇴", "졸업예정"}
	ActivityTypes    = []string{"교내활동", "인턴", "자원봉사", "동아리", "아르바이트", "사회활동", "수행과제", "해외연수"}

	// QualificationTypes 공고 작성 화면의 자격 구분 (서버는 강제하지 않음)
	QualificationTypes = []string{"근로 장학생", "교비", "조교"}
)

// 메시지
const (
	MsgMissingFields    = "모든 필드를 입력해주세요."
	MsgPasswordMismatch = "비밀번호가 일치하지 않습니다."
	MsgBadEmail         = "올바른 이메일 형식이 아닙니다."
	MsgTooLong          = "입력 길이가 제한을 초과했습니다."

	MsgPostingMissing  = "모든 항목을 입력하세요"
	MsgPostingDate     = "날짜 형식이 안 맞아요"
	MsgPostingContact  = "전화번호 형식이 다릅니다."
	MsgPostingContents = "상세 내용은 500자를 초과할 수 없습니다."
)

// JobSeekerSignUp 구직자 회원가입
var JobSeekerSignUp = []Rule{
	Required(MsgMissingFields, FieldStudentID, FieldEmail, FieldPassword, FieldConfirmPassword),
	Equals(FieldPassword, FieldConfirmPassword, MsgPasswordMismatch),
	Pattern(emailPattern, MsgBadEmail, FieldEmail),
	MaxLen(FieldStudentID, 15, MsgTooLong),
	MaxLen(FieldEmail, 30, MsgTooLong),
	MaxLen(FieldPassword, 20, MsgTooLong),
}

// EmployerSignUp 구인자 회원가입
var EmployerSignUp = []Rule{
	Required(MsgMissingFields, FieldID, FieldDepartmentName, FieldPassword, FieldConfirmPassword),
	Equals(FieldPassword, FieldConfirmPassword, MsgPasswordMismatch),
	MaxLen(FieldID, 7, MsgTooLong),
	MaxLen(FieldDepartmentName, 15, MsgTooLong),
	MaxLen(FieldPassword, 15, MsgTooLong),
}

// PostingFields 공고 입력 11개 항목
var PostingFields = []string{
	FieldTitle, FieldContents, FieldCompanyName, FieldLocation, FieldQualificationType,
	FieldWorkPeriodStart, FieldWorkPeriodEnd, FieldRecruitmentDeadline, FieldHourlyWage,
	FieldApplicationMethod, FieldContactNumber,
}

// JobPosting 공고 등록/수정 공용
// 시급이 숫자가 아닐 때도 누락과 같은 메시지를 쓴다
var JobPosting = []Rule{
	RequiredTrimmed(MsgPostingMissing, PostingFields...),
	Pattern(digitsPattern, MsgPostingMissing, FieldHourlyWage),
	Pattern(dayPattern, MsgPostingDate, FieldWorkPeriodStart, FieldWorkPeriodEnd, FieldRecruitmentDeadline),
	Pattern(contactPattern, MsgPostingContact, FieldContactNumber),
	MaxLen(FieldContents, 500, MsgPostingContents),
	MaxLen(FieldTitle, 30, "제목은 30자를 초과할 수 없습니다."),
	MaxLen(FieldCompanyName, 15, "회사명은 15자를 초과할 수 없습니다."),
	MaxLen(FieldLocation, 15, "근무지는 15자를 초과할 수 없습니다."),
	MaxLen(FieldQualificationType, 20, "자격 구분은 20자를 초과할 수 없습니다."),
	MaxLen(FieldApplicationMethod, 30, "지원 방법은 30자를 초과할 수 없습니다."),
}

// NormalInfo 구직자 기본 정보
var NormalInfo = []Rule{
	Required("이름, 생년월일, 이메일, 휴대폰 번호는 필수 입력 항목입니다.", FieldName, FieldBirthDate, FieldEmail, FieldPhone),
	MaxLen(FieldName, 5, "이름은 5자를 초과할 수 없습니다."),
	Pattern(birthDatePattern, "생년월일은 YYYYMMDD 형식으로 입력해주세요.", FieldBirthDate),
	Pattern(emailPattern, MsgBadEmail, FieldEmail),
	MaxLen(FieldEmail, 50, "이메일은 50자를 초과할 수 없습니다."),
	Pattern(mobilePattern, "올바른 휴대폰 번호 형식이 아닙니다. (예: 010-1234-5678)", FieldPhone),
}

// EmployerProfile 구인자 연락처 수정. 두 항목 모두 비워 둘 수 있다
var EmployerProfile = []Rule{
	MaxLen(FieldPhoneNumber, 20, "전화번호는 20자를 초과할 수 없습니다."),
	Custom(func(f Form) bool {
		return f[FieldPhoneNumber] == "" || employerPhonePattern.MatchString(f[FieldPhoneNumber])
	}, MsgPostingContact),
	MaxLen(FieldEmail, 50, "이메일은 50자를 초과할 수 없습니다."),
	Custom(func(f Form) bool { return f[FieldEmail] == "" || emailPattern.MatchString(f[FieldEmail]) }, MsgBadEmail),
}

// GradInfo 학력 정보
var GradInfo = []Rule{
	Required("모든 필수 항목을 입력해주세요.",
		FieldUniversityType, FieldSchoolName, FieldAdmissionDate, FieldGraduationDate, FieldGraduationStatus, FieldMajor),
	OneOf(FieldUniversityType, UniversityTypes, "올바른 대학 유형을 선택해주세요."),
	MaxLen(FieldSchoolName, 30, "학교명은 30자를 초과할 수 없습니다."),
	Pattern(monthDotPattern, "재학기간은 YYYY.MM 형식으로 입력해주세요.", FieldAdmissionDate, FieldGraduationDate),
	OneOf(FieldGraduationStatus, GraduationStatus, "올바른 졸업여부를 선택해주세요."),
	MaxLen(FieldMajor, 15, "전공은 15자를 초과할 수 없습니다."),
}

// ExperienceActivity 경험/활동/교육
var ExperienceActivity = []Rule{
	Required(MsgMissingFields, FieldActivityType, FieldOrganization, FieldStartDate, FieldEndDate, FieldDescription),
	OneOf(FieldActivityType, ActivityTypes, "올바른 활동구분을 선택해주세요."),
	MaxLen(FieldOrganization, 20, "기관/장소는 20자를 초과할 수 없습니다."),
	Pattern(monthDashPattern, "날짜는 YYYY-MM 형식으로 입력해주세요.", FieldStartDate, FieldEndDate),
	MaxLen(FieldDescription, 500, "활동내용은 500자를 초과할 수 없습니다."),
}
