package extraction

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"github.com/lvogel/admithub/internal/app/models"
	"github.com/lvogel/admithub/internal/pkg/apperrors"
	"github.com/lvogel/admithub/internal/pkg/logger"
)

// systemPrompt encodes the extraction policy: transcript-only courses, one
// entry per distinct course, lower bound of credit ranges, mandatory
// credits, ordering by first detailed definition, fullest-description page.
const systemPrompt = `
You are an expert at extracting course information from text into JSON.

Goal
From the provided text, extract all courses and return a single JSON object with this shape:
courses: array of course objects
name: string — official course/module title (strip level/semester tags unless integral to title)
credits: number (ECTS), 0.5–30; half-points allowed (e.g., 3.0, 4.5)
subjectArea: one of:
"computer_science"
"information_systems"
"quantitative_methods"
"business_administration"
"none"
description: string, one sentence (10–300 chars) summarizing course content (no prerequisites, assessment, or scheduling)
page (optional): positive integer page where content is defined in detail (not just first mention); if unknown, set null or omit

Subject area mapping (pick the best single match)
computer_science: programming (incl. OO/Java), algorithms/data structures, software engineering (process models, tools), computer architecture & operating systems, web engineering.
information_systems: IS basics; data models & databases (ER, SQL); process management; project management; communication/collaboration systems; digital business; information management; IT law.
quantitative_methods: math in economics (calculus, linear systems, vectors/matrices, nonlinear optimization); operations research (LP, optimization, decision theory); data & probabilities (descriptive stats, probability, statistical software); data analysis & simulation (estimation/tests, regression/classification, simulation software).
business_administration: business management basics (procurement, investment, accounting, HR & organization, production planning); IS-relevant basics (marketing, controlling, innovation, entrepreneurship, corporate management); economics (micro, macro, international, policy).
none: if none of the above fits.

Rules
Language: output has to be in English.
Only include courses also listed in the transcript of records section.
Extract every distinct course exactly once.
If a module lists sub-courses with their own ECTS and content, treat each sub-course as a separate course; otherwise, treat the module as one course.
Credits: use the value explicitly tied to ECTS. If a range is given, choose the lower bound. Ignore contact hours.
Page: choose the page with the start of the fullest description (not index/summary).
Ordering: preserve the order of first detailed definition in the text.
Missing data: if credits are missing, omit the course (credits are mandatory).
`

// Candidate is one raw extracted course before reconciliation.
type Candidate struct {
	Name        string             `json:"name"`
	Credits     float64            `json:"credits"`
	SubjectArea models.SubjectArea `json:"subjectArea"`
	Description string             `json:"description"`
	Page        *int               `json:"page,omitempty"`
}

// Client calls the inference service with a fixed instruction prompt and a
// strict output schema.
type Client interface {
	// ExtractCourses returns the ordered candidate courses found in text.
	// A failed call or unusable output surfaces apperrors.ErrExtractionFailed;
	// callers treat that as zero candidates, extraction is advisory.
	ExtractCourses(ctx context.Context, text string) ([]Candidate, error)
}

// Config holds extraction client settings.
type Config struct {
	ProjectID string
	Region    string
	Model     string
}

// VertexClient is the Vertex AI backed extraction client.
type VertexClient struct {
	model      *genai.GenerativeModel
	baseClient *genai.Client
}

// responseSchema constrains generation to the extraction output shape.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"courses": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":    {Type: genai.TypeString},
					"credits": {Type: genai.TypeNumber},
					"subjectArea": {
						Type: genai.TypeString,
						Enum: []string{
							string(models.AreaComputerScience),
							string(models.AreaInformationSystems),
							string(models.AreaQuantitativeMethods),
							string(models.AreaBusinessAdministration),
							string(models.AreaNone),
						},
					},
					"description": {Type: genai.TypeString},
					"page":        {Type: genai.TypeInteger, Nullable: true},
				},
				Required: []string{"name", "credits", "subjectArea", "description"},
			},
		},
	},
	Required: []string{"courses"},
}

// NewVertexClient creates the extraction client. The model is configured
// once: JSON-only output, response schema, temperature zero.
func NewVertexClient(ctx context.Context, cfg Config) (*VertexClient, error) {
	if cfg.ProjectID == "" || cfg.Region == "" {
		return nil, fmt.Errorf("extraction: project id and region cannot be empty")
	}

	baseClient, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := baseClient.GenerativeModel(cfg.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
		Temperature:      genai.Ptr[float32](0.0),
	}

	return &VertexClient{model: model, baseClient: baseClient}, nil
}

// ExtractCourses implements Client.
func (c *VertexClient) ExtractCourses(ctx context.Context, text string) ([]Candidate, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		logger.Error().Err(err).Msg("Course extraction call failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, err)
	}

	raw := responseText(resp)
	if raw == "" {
		logger.Error().Msg("Course extraction returned an empty response")
		return nil, fmt.Errorf("%w: empty model response", apperrors.ErrExtractionFailed)
	}

	candidates, err := ParseCandidates(raw)
	if err != nil {
		logger.Error().Err(err).Str("response", raw).Msg("Course extraction output failed schema validation")
		return nil, err
	}

	logger.Info().Int("candidates", len(candidates)).Msg("Course extraction complete")
	return candidates, nil
}

// Close releases the underlying client.
func (c *VertexClient) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}

// responseText gets the raw text content from the model response.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
		return string(txt)
	}
	return ""
}
