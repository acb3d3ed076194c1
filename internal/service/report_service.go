package service

import (
	"fmt"
	"time"

	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/repository"
	"github.com/rs/zerolog/log"
)

// leaderboardLimit caps every top-N report list.
const leaderboardLimit = 10

type ReportService interface {
	// BuildReport runs every aggregation query once and assembles the result
	// into a single snapshot. There is no caching: each call reflects current
	// store state. Any failing sub-query fails the whole build.
	BuildReport() (*dto.ReportSnapshot, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) BuildReport() (*dto.ReportSnapshot, error) {
	snapshot := dto.ReportSnapshot{GeneratedAt: time.Now().UTC()}

	engagement, err := s.buildEngagement()
	if err != nil {
		log.Error().Err(err).Msg("Report build failed in engagement section")
		return nil, fmt.Errorf("building engagement report: %w", err)
	}
	snapshot.Engagement = *engagement

	ai, err := s.buildAI()
	if err != nil {
		log.Error().Err(err).Msg("Report build failed in AI section")
		return nil, fmt.Errorf("building AI report: %w", err)
	}
	snapshot.AI = *ai

	oversight, err := s.buildOversight()
	if err != nil {
		log.Error().Err(err).Msg("Report build failed in oversight section")
		return nil, fmt.Errorf("building oversight report: %w", err)
	}
	snapshot.Oversight = *oversight

	return &snapshot, nil
}

func (s *reportService) buildEngagement() (*dto.EngagementReport, error) {
	var report dto.EngagementReport
	var err error

	if report.TotalProblems, err = s.reportRepo.TotalProblems(); err != nil {
		return nil, err
	}
	if report.TotalSolutions, err = s.reportRepo.TotalSolutions(); err != nil {
		return nil, err
	}
	if report.TotalComments, err = s.reportRepo.TotalComments(); err != nil {
		return nil, err
	}
	if report.TotalVotes, err = s.reportRepo.TotalVotes(); err != nil {
		return nil, err
	}
	if report.ProblemsPerTopic, err = s.reportRepo.ProblemsPerTopic(); err != nil {
		return nil, err
	}
	if report.ProblemsDaily, err = s.reportRepo.ProblemsPerDay(); err != nil {
		return nil, err
	}
	if report.TopActiveUsers, err = s.reportRepo.TopActiveUsers(leaderboardLimit); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *reportService) buildAI() (*dto.AIReport, error) {
	var report dto.AIReport
	var err error

	if report.AISolutions, err = s.reportRepo.SolutionCountByClass(true); err != nil {
		return nil, err
	}
	if report.HumanSolutions, err = s.reportRepo.SolutionCountByClass(false); err != nil {
		return nil, err
	}

	aiVotes, err := s.reportRepo.VoteCountByClass(true)
	if err != nil {
		return nil, err
	}
	humanVotes, err := s.reportRepo.VoteCountByClass(false)
	if err != nil {
		return nil, err
	}
	report.AIAvgVotes = averageVotes(aiVotes, report.AISolutions)
	report.HumanAvgVotes = averageVotes(humanVotes, report.HumanSolutions)

	if report.AIAnswerTypes, err = s.reportRepo.AnswerTypeBreakdown(true); err != nil {
		return nil, err
	}
	if report.HumanAnswerTypes, err = s.reportRepo.AnswerTypeBreakdown(false); err != nil {
		return nil, err
	}
	if report.AITopicBreakdown, err = s.reportRepo.AITopicBreakdown(); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *reportService) buildOversight() (*dto.OversightReport, error) {
	var report dto.OversightReport
	var err error

	if report.TopAISolutions, err = s.reportRepo.TopSolutionsByClass(true, leaderboardLimit); err != nil {
		return nil, err
	}
	if report.TopHumanSolutions, err = s.reportRepo.TopSolutionsByClass(false, leaderboardLimit); err != nil {
		return nil, err
	}
	if report.BestUsers, err = s.reportRepo.BestUsers(leaderboardLimit); err != nil {
		return nil, err
	}
	if report.MostActiveProblems, err = s.reportRepo.MostActiveProblems(leaderboardLimit); err != nil {
		return nil, err
	}
	return &report, nil
}

// averageVotes is defined as 0 when the class has no solutions.
func averageVotes(votes, solutions int64) float64 {
	if solutions == 0 {
		return 0
	}
	return float64(votes) / float64(solutions)
}
