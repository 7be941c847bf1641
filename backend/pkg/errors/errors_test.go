package errors

import (
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestClassify_Wrapped(t *testing.T) {
	if !IsNotFound(fmt.Errorf("조회: %w", gorm.ErrRecordNotFound)) {
		t.Error("감싼 ErrRecordNotFound 도 인식해야 함")
	}
	if !IsDuplicate(fmt.Errorf("삽입: %w", gorm.ErrDuplicatedKey)) {
		t.Error("감싼 ErrDuplicatedKey 도 인식해야 함")
	}
	if !IsForeignKey(gorm.ErrForeignKeyViolated) {
		t.Error("ErrForeignKeyViolated 를 인식해야 함")
	}
	if IsNotFound(gorm.ErrDuplicatedKey) || IsDuplicate(nil) {
		t.Error("다른 오류를 잘못 분류함")
	}
}
