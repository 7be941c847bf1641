package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wig7227/YeonsungJobFind/backend/internal/service"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/response"
)

// msgBadRequest 요청 본문을 해석할 수 없을 때
const msgBadRequest = "잘못된 요청 형식입니다."

// MustParseID 경로 파라미터를 숫자 ID 로 읽는다.
// 숫자가 아니면 그런 레코드는 있을 수 없으므로 notFound 메시지로 404 를 쓰고 false 를 돌려준다.
// 호출 측은 ok=false 이면 바로 return 한다.
func MustParseID(c *gin.Context, param, notFound string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, notFound)
		return 0, false
	}
	return id, true
}

// writeValidation 서비스 오류가 입력 검사 실패면 400 을 쓰고 true
func writeValidation(c *gin.Context, err error) bool {
	if msg, ok := service.AsValidation(err); ok {
		response.BadRequest(c, msg)
		return true
	}
	return false
}
