package service

import (
	"sort"

	"github.com/lshigami/CodeClinic/internal/dto"
)

// RankSolutions orders a problem's solution list in place for display.
// Sort keys, in descending priority:
//  1. ai_generated desc (AI solutions first)
//  2. answer_type asc (lexicographic)
//  3. upvotes desc
//  4. downvotes asc
//  5. created_at desc (newest first)
//
// The sort is stable: solutions equal on all five keys keep their input order.
func RankSolutions(solutions []dto.SolutionResponse) {
	sort.SliceStable(solutions, func(i, j int) bool {
		a, b := solutions[i], solutions[j]
		if a.AIGenerated != b.AIGenerated {
			return a.AIGenerated
		}
		if a.AnswerType != b.AnswerType {
			return a.AnswerType < b.AnswerType
		}
		if a.UpvotesCount != b.UpvotesCount {
			return a.UpvotesCount > b.UpvotesCount
		}
		if a.DownvotesCount != b.DownvotesCount {
			return a.DownvotesCount < b.DownvotesCount
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
