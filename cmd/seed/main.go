package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"healthcard/cmd/fx/account_fx"
	"healthcard/cmd/fx/card_fx"
	"healthcard/cmd/fx/db_fx"
	"healthcard/cmd/fx/infra_fx"
	"healthcard/internal/models/db_models"
	"healthcard/internal/models/request_models"
	"healthcard/internal/services"
)

var accounts = []request_models.NewAccount{
	{Email: "admin@example.com", Name: "Admin User", Password: "admin123", Role: db_models.RoleAdmin},
	{Email: "agent@example.com", Name: "Office Agent", Password: "agent123", Role: db_models.RoleOfficeAgent},
	{
		Email:    "hospital@example.com",
		Name:     "Hospital User",
		Password: "hospital123",
		Role:     db_models.RoleHospitalUser,
		Hospital: &request_models.NewHospital{
			Name:      "City General Hospital",
			Address:   "1 Main Street",
			Phone:     "5550100",
			LicenseNo: "HOSP-0001",
		},
	},
}

var plans = []request_models.NewPlan{
	{Name: "Basic Plan", Description: "Basic health coverage for individuals", Price: 50, DurationDays: 365},
	{Name: "Family Plan", Description: "Comprehensive health coverage for families", Price: 120, DurationDays: 365},
	{Name: "Premium Plan", Description: "Premium health coverage with additional benefits", Price: 200, DurationDays: 365},
}

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		infra_fx.Module,
		db_fx.Module,
		card_fx.Module,
		account_fx.Module,

		fx.Invoke(seed),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func seed(accountService services.AccountServiceInterface, planService services.PlanServiceInterface, log *zap.Logger) error {
	ctx := context.Background()

	for _, account := range accounts {
		user, created, err := accountService.EnsureAccount(ctx, account)
		if err != nil {
			return fmt.Errorf("seed %s: %w", account.Email, err)
		}
		log.Info("user", zap.String("email", user.Email), zap.String("role", string(user.Role)), zap.Bool("created", created))

		token, err := accountService.IssueToken(user)
		if err != nil {
			return fmt.Errorf("token for %s: %w", account.Email, err)
		}
		fmt.Printf("%-14s %s\n", user.Role, token)
	}

	for _, plan := range plans {
		view, created, err := planService.EnsurePlan(ctx, plan)
		if err != nil {
			return fmt.Errorf("seed plan %s: %w", plan.Name, err)
		}
		log.Info("plan", zap.String("name", view.Name), zap.Stringer("id", view.ID), zap.Bool("created", created))
	}

	return nil
}
