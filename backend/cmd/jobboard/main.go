// jobboard 잡보드 API 를 터미널에서 쓰는 클라이언트
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wig7227/YeonsungJobFind/backend/internal/client"
	"github.com/wig7227/YeonsungJobFind/backend/internal/dto"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/session"
	"github.com/wig7227/YeonsungJobFind/backend/pkg/validation"
)

type options struct {
	server   string
	timeout  time.Duration
	userType string
	id       string
	password string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "jobboard",
		Short:         "연성대 교내 구인 게시판 클라이언트",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", envOr("YSU_SERVER", "http://localhost:3000"), "API 서버 주소")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "요청 제한 시간")
	root.PersistentFlags().StringVar(&opts.userType, "user-type", session.UserEmployer, "jobSeeker | employer")
	root.PersistentFlags().StringVar(&opts.id, "id", os.Getenv("YSU_ID"), "로그인 아이디 (학번 또는 구인자 ID)")
	root.PersistentFlags().StringVar(&opts.password, "password", os.Getenv("YSU_PASSWORD"), "로그인 비밀번호")

	root.AddCommand(
		newJobsCmd(opts),
		newDepartmentsCmd(opts),
		newJobCmd(opts),
		newPostCmd(opts),
		newExportCmd(opts),
		newCalendarCmd(opts),
	)
	return root
}

// connect 클라이언트 생성. needLogin 이면 먼저 로그인한다
func connect(cmd *cobra.Command, opts *options, needLogin bool) (*client.Client, error) {
	c := client.New(opts.server, session.New(), client.WithTimeout(opts.timeout))
	if needLogin {
		if err := c.Login(cmd.Context(), opts.userType, opts.id, opts.password); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newJobsCmd(opts *options) *cobra.Command {
	var status, departments string
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "전체 공고 목록",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := connect(cmd, opts, false)
			if err != nil {
				return err
			}
			jobs, err := c.AllJobs(cmd.Context(), status, splitList(departments))
			if err != nil {
				return err
			}
			for _, j := range jobs {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n", j.ID, j.Status, j.RecruitmentDeadline, j.CompanyName, j.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "active", "active | closed")
	cmd.Flags().StringVar(&departments, "departments", "", "쉼표로 구분한 부서명")
	return cmd
}

func newDepartmentsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "공고를 올린 부서 목록",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := connect(cmd, opts, false)
			if err != nil {
				return err
			}
			names, err := c.Departments(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newJobCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "job <id>",
		Short: "공고 상세",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("잘못된 공고 ID: %s", args[0])
			}
			c, err := connect(cmd, opts, false)
			if err != nil {
				return err
			}
			job, err := c.JobDetail(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, job)
		},
	}
}

func newPostCmd(opts *options) *cobra.Command {
	var file string
	var dryRun bool
	var openDays int
	cmd := &cobra.Command{
		Use:   "post",
		Short: "JSON 파일로 공고 등록 (구인자 로그인 필요)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var req dto.PostingRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("공고 파일 해석 실패: %w", err)
			}
			if openDays > 0 {
				req.RecruitmentDeadline = validation.FormatDay(time.Now().AddDate(0, 0, openDays))
			}

			if dryRun {
				res := client.ValidatePosting(&req)
				if !res.Valid {
					return fmt.Errorf("%s", res.Message)
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Message)
				return nil
			}

			c, err := connect(cmd, opts, true)
			if err != nil {
				return err
			}
			id, err := c.PostJob(cmd.Context(), &req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "등록된 공고 ID: %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "공고 JSON 파일")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "서버에 보내지 않고 입력 규칙만 검사")
	cmd.Flags().IntVar(&openDays, "open-days", 0, "오늘부터 N일 뒤를 모집 마감일로 지정")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var status, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "내 공고를 Excel 로 내려받기 (구인자 로그인 필요)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := connect(cmd, opts, true)
			if err != nil {
				return err
			}
			data, filename, err := c.ExportJobs(cmd.Context(), status)
			if err != nil {
				return err
			}
			if out == "" {
				out = localFilename(filename, "jobs.xlsx")
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "저장: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "active | closed (비우면 전체)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "저장할 파일 (기본: 서버가 준 파일명)")
	return cmd
}

func newCalendarCmd(opts *options) *cobra.Command {
	var status, departments, out string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "공고 마감일 iCalendar 내려받기",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := connect(cmd, opts, false)
			if err != nil {
				return err
			}
			data, err := c.JobCalendar(cmd.Context(), status, splitList(departments))
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "active | closed (기본 active)")
	cmd.Flags().StringVar(&departments, "departments", "", "쉼표로 구분한 부서명")
	cmd.Flags().StringVarP(&out, "out", "o", "", "저장할 파일 (비우면 표준 출력)")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// localFilename 서버가 준 파일명에서 경로를 떼어 현재 디렉터리에 저장한다
func localFilename(name, fallback string) string {
	base := filepath.Base(filepath.FromSlash(strings.ReplaceAll(name, "\\", "/")))
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "" {
		return fallback
	}
	return base
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
