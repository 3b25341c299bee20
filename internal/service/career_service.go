package service

import (
	"context"
	"fmt"
	"strings"

	"nnrgconnect/internal/genai"
	"nnrgconnect/internal/models"
	"nnrgconnect/internal/pdftext"
	"nnrgconnect/internal/storage"
)

const maxResumeSizeBytes = 5 * 1024 * 1024

// CareerService proxies resume analysis and career tips through the
// generative-text client. Responses pass through unmodified.
type CareerService struct {
	generator genai.TextGenerator
}

// CareerTipsInput carries the tip request. Only Interests is required.
type CareerTipsInput struct {
	Interests       []string `json:"interests"`
	CurrentRole     string   `json:"currentRole"`
	ExperienceLevel string   `json:"experienceLevel"`
}

// NewCareerService returns a new CareerService.
func NewCareerService(generator genai.TextGenerator) *CareerService {
	return &CareerService{generator: generator}
}

// AnalyzeResume extracts the text of an uploaded PDF resume and asks
// the generation backend for improvement suggestions.
func (s *CareerService) AnalyzeResume(ctx context.Context, contentType string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", models.NewValidationError("No resume file uploaded.")
	}
	if int64(len(content)) > maxResumeSizeBytes {
		return "", models.NewValidationError("File is too large (max 5MB)")
	}
	if !storage.IsPDF(contentType) {
		return "", models.NewValidationError("Not a PDF! Please upload a PDF file.")
	}

	if s.generator == nil {
		return "", models.NewUpstreamError("AI service is not configured", nil)
	}

	resumeText, err := pdftext.ExtractText(content)
	if err != nil {
		return "", models.NewValidationError("Could not extract text from PDF or PDF is empty.")
	}

	prompt := fmt.Sprintf("Analyze the following resume text and provide constructive feedback and suggestions for improvement. "+
		"Focus on clarity, impact, and common resume best practices. Highlight strengths and areas for development. "+
		"Format the output clearly, perhaps with sections for suggestions, strengths, and areas to improve.:\n\n---\n%s\n---\nSuggestions:", resumeText)

	suggestions, err := s.generator.Generate(ctx, "analyze_resume", prompt)
	if err != nil {
		return "", models.NewUpstreamError("Failed to get suggestions from AI service", err)
	}
	return suggestions, nil
}

// GetCareerTips builds a tips prompt from the student's interests and
// optional role and experience details.
func (s *CareerService) GetCareerTips(ctx context.Context, in CareerTipsInput) (string, error) {
	if len(in.Interests) == 0 {
		return "", models.NewValidationError("Please provide a list of interests.")
	}
	if s.generator == nil {
		return "", models.NewUpstreamError("AI service is not configured", nil)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Provide career tips for someone interested in the following fields: %s.", strings.Join(in.Interests, ", "))
	if in.CurrentRole != "" {
		fmt.Fprintf(&b, " Their current role is %s.", in.CurrentRole)
	}
	if in.ExperienceLevel != "" {
		fmt.Fprintf(&b, " Their experience level is %s.", in.ExperienceLevel)
	}
	b.WriteString(" Offer actionable advice, potential career paths, skills to develop, and resources for learning.")

	tips, err := s.generator.Generate(ctx, "career_tips", b.String())
	if err != nil {
		return "", models.NewUpstreamError("Failed to get tips from AI service", err)
	}
	return tips, nil
}
