package handler

import "github.com/wig7227/YeonsungJobFind/backend/internal/service"

// Handler 모든 Handler 의 집합
type Handler struct {
	Account  *AccountHandler
	Posting  *PostingHandler
	Employer *EmployerHandler
	Profile  *ProfileHandler
	Export   *ExportHandler
}

// NewHandler Handler 집합 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Account:  NewAccountHandler(svc.Account),
		Posting:  NewPostingHandler(svc.Posting),
		Employer: NewEmployerHandler(svc.Employer),
		Profile:  NewProfileHandler(svc.Profile),
		Export:   NewExportHandler(svc.Export),
	}
}
