package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"healthcard/internal/models/db_models"
	"healthcard/internal/models/request_models"
	"healthcard/internal/models/response_models"
	"healthcard/internal/repositories"
	"healthcard/pkg/utils"
)

type PlanServiceInterface interface {
	// EnsurePlan returns the plan named request.Name, creating it when missing.
	EnsurePlan(ctx context.Context, request request_models.NewPlan) (*response_models.PlanView, bool, error)
}

func NewPlanService(planRepo repositories.IPlanRepository, log *zap.Logger) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
		log:      log.Named("plans"),
	}
}

type PlanService struct {
	planRepo repositories.IPlanRepository
	log      *zap.Logger
}

func (p *PlanService) EnsurePlan(ctx context.Context, request request_models.NewPlan) (*response_models.PlanView, bool, error) {

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, false, utils.Validation("plan name is required")
	}
	if request.DurationDays <= 0 {
		return nil, false, utils.Validation("durationDays must be positive")
	}
	if request.Price < 0 {
		return nil, false, utils.Validation("price must be at least 0")
	}

	plan, err := p.planRepo.GetPlanByName(ctx, name)
	if err != nil {
		p.log.Error("find plan", zap.String("name", name), zap.Error(err))
		return nil, false, utils.ErrDatabaseError
	}
	if plan != nil {
		return response_models.NewPlanView(plan), false, nil
	}

	plan = &db_models.Plan{
		Name:         name,
		Price:        request.Price,
		DurationDays: request.DurationDays,
	}
	if request.Description != "" {
		description := request.Description
		plan.Description = &description
	}

	if err := p.planRepo.CreatePlan(ctx, plan); err != nil {
		p.log.Error("create plan", zap.String("name", name), zap.Error(err))
		return nil, false, utils.ErrDatabaseError
	}

	return response_models.NewPlanView(plan), true, nil
}
