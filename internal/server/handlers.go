package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/itrgo/internal/config"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type adjustmentView struct {
	Field string          `json:"field"`
	From  decimal.Decimal `json:"from"`
	To    decimal.Decimal `json:"to"`
}

type taxResponse struct {
	Data        any              `json:"data"`
	Adjustments []adjustmentView `json:"adjustments,omitempty"`
}

// bindInput decodes, normalizes and validates the request body. Amount
// adjustments are logged and echoed back to the client.
func (s *Server) bindInput(c *gin.Context) (domain.TaxpayerInput, []adjustmentView, bool) {
	var raw domain.TaxpayerInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		AbortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return domain.TaxpayerInput{}, nil, false
	}

	input, adjustments := config.NormalizeInput(raw)
	if err := s.parser.ValidateInput(input); err != nil {
		AbortWithError(c, &ValidationError{Message: "input validation failed", Cause: err})
		return domain.TaxpayerInput{}, nil, false
	}

	views := make([]adjustmentView, 0, len(adjustments))
	for _, a := range adjustments {
		s.log.Warn("input adjusted",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("field", a.Field),
			zap.String("from", a.From.String()),
			zap.String("to", a.To.String()))
		views = append(views, adjustmentView{Field: a.Field, From: a.From, To: a.To})
	}
	return input, views, true
}

func (s *Server) observe(result domain.TaxResult) {
	s.metrics.ObserveCalculation(string(result.Regime), result.EffectiveTaxRate.InexactFloat64())
}

// GetRules returns the rules table the engine was built with.
func (s *Server) GetRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.calc.Rules})
}

func (s *Server) CalculateOld(c *gin.Context) {
	input, adjustments, ok := s.bindInput(c)
	if !ok {
		return
	}
	result := s.calc.CalculateOldRegimeTax(input.Salary, input.Deductions, input.Profile)
	s.observe(result)
	c.JSON(http.StatusOK, taxResponse{Data: result, Adjustments: adjustments})
}

func (s *Server) CalculateNew(c *gin.Context) {
	input, adjustments, ok := s.bindInput(c)
	if !ok {
		return
	}
	result := s.calc.CalculateNewRegimeTax(input.Salary, input.Deductions)
	s.observe(result)
	c.JSON(http.StatusOK, taxResponse{Data: result, Adjustments: adjustments})
}

func (s *Server) Compare(c *gin.Context) {
	input, adjustments, ok := s.bindInput(c)
	if !ok {
		return
	}
	comparison := s.compare.Compare(input)
	s.observe(comparison.Old)
	s.observe(comparison.New)
	s.metrics.ObserveRecommendation(string(comparison.Recommended))
	c.JSON(http.StatusOK, taxResponse{Data: comparison, Adjustments: adjustments})
}

func (s *Server) BreakEven(c *gin.Context) {
	input, adjustments, ok := s.bindInput(c)
	if !ok {
		return
	}
	result, err := s.solver.Solve(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ObserveBreakEven(result.Iterations)
	c.JSON(http.StatusOK, taxResponse{Data: result, Adjustments: adjustments})
}
