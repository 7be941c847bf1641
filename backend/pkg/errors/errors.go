package errors

import (
	"errors"

	"gorm.io/gorm"
)

// 저장소 오류 분류 (gorm TranslateError 가 켜져 있어야 동작한다)

// IsNotFound 단건 조회 결과 없음
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate 유니크 제약 위반
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKey 외래 키 제약 위반
func IsForeignKey(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
