package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 공통 메시지
const (
	MsgServerError   = "서버 오류가 발생했습니다."
	MsgInvalidStatus = "잘못된 상태 파라미터입니다."
)

// body 응답 본문 {success, message, ...payload}
// payload 키가 success/message 와 겹치면 envelope 값이 우선한다
func body(success bool, message string, payload gin.H) gin.H {
	h := gin.H{}
	for k, v := range payload {
		h[k] = v
	}
	h["success"] = success
	h["message"] = message
	return h
}

// ── 성공 응답 ──

// OK 200 성공 응답
func OK(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, body(true, message, payload))
}

// Created 201 생성 성공
func Created(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusCreated, body(true, message, payload))
}

// Absent 200 이지만 success=false (선택 레코드가 아직 없음)
func Absent(c *gin.Context, message string) {
	c.JSON(http.StatusOK, body(false, message, nil))
}

// Validation 검증 엔드포인트 전용 {isValid, message}
func Validation(c *gin.Context, valid bool, message string) {
	c.JSON(http.StatusOK, gin.H{"isValid": valid, "message": message})
}

// ValidationError 검증 엔드포인트의 500 응답. 확인 불가는 통과가 아니다
func ValidationError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"isValid": false, "message": MsgServerError})
}

// ── 오류 응답 ──

// Error 공통 오류 응답
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, body(false, message, nil))
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, MsgServerError)
}
