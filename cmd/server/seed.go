package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/storage/postgres"
)

const demoResume = `Иван Иванов
Backend разработчик (Middle)
Москва, +7 999 123-45-67, candidate@example.com

Опыт работы
2021 – настоящее время: ООО «ТехноКорп», backend разработчик.
Разработал сервис обработки заказов на Go и PostgreSQL, снизил время ответа API на 40%.
Настроил CI/CD в GitLab, контейнеризацию в Docker и развёртывание в Kubernetes.

2019 – 2021: ООО «Веб Студия», Python разработчик.
Поддерживал REST API на Django, писал интеграции с платёжными системами.

Образование
2015 – 2019: МГТУ им. Баумана, информатика и вычислительная техника.

Навыки
Go, Python, SQL, PostgreSQL, Redis, Docker, Kubernetes, Git, Linux, REST API.

О себе
Люблю разбираться в сложных системах, участвую в код-ревью и менторстве стажёров.
`

var demoUsers = []auth.RegisterInput{
	{
		Email:           "hr@company.com",
		Username:        "hr_manager",
		Password:        "hr123",
		PasswordConfirm: "hr123",
		FullName:        "HR Менеджер",
		Role:            auth.RoleHR,
		Company:         "ТехноКорп",
		Position:        "HR Manager",
	},
	{
		Email:           "candidate@example.com",
		Username:        "candidate",
		Password:        "candidate123",
		PasswordConfirm: "candidate123",
		FullName:        "Иван Иванов",
		Role:            auth.RoleCandidate,
		Phone:           "+79991234567",
		Location:        "Москва",
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo HR and candidate accounts with a sample resume",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := setup(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer e.close()
		return seed(cmd.Context(), e)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seed(ctx context.Context, e *env) error {
	if err := postgres.Migrate(ctx, e.pool, e.log); err != nil {
		return err
	}
	s, err := wire(e)
	if err != nil {
		return err
	}
	defer s.close()

	for _, in := range demoUsers {
		_, err := s.auth.Register(ctx, in)
		switch {
		case errors.Is(err, auth.ErrUserAlreadyExists):
			e.log.Info("demo user exists", zap.String("username", in.Username))
		case err != nil:
			return err
		default:
			e.log.Info("demo user created", zap.String("username", in.Username), zap.String("role", string(in.Role)))
		}
	}

	cand, err := s.users.GetByLogin(ctx, "candidate")
	if err != nil {
		return err
	}
	actor := auth.Actor{UserID: cand.ID, Role: cand.Role}
	existing, err := s.resumes.List(ctx, actor)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	sub, err := s.resumes.SubmitText(ctx, actor, "ivan_ivanov.txt", demoResume)
	if err != nil {
		return err
	}
	e.log.Info("demo resume analyzed",
		zap.String("resume_id", sub.Resume.ID.String()),
		zap.Float64("score", sub.Analysis.Score),
		zap.String("verdict", string(sub.Analysis.Verdict)),
	)
	return nil
}
