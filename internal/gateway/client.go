package gateway

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"wathiq/internal/models"
)

const imageForensicsPrompt = `Act as a forensic image analyst specializing in detecting AI-generated and manipulated images. Perform a detailed examination of this image. Your analysis should evaluate the following key areas:
1.  **Anatomy and Proportions:** Check for unnatural body parts, incorrect number of fingers, distorted facial features, or inconsistent proportions.
2.  **Lighting and Shadows:** Analyze if shadows are consistent with the light sources in the scene. Look for objects that are lit from different directions or lack appropriate shadows.
3.  **Background and Environment:** Examine the background for distorted patterns, illogical structures, or elements that blend unnaturally.
4.  **Texture and Detail:** Look for areas that are overly smooth (like plastic skin), have strange texture patterns, or have inconsistent levels of detail across the image.
5.  **AI Artifacts:** Identify common digital artifacts from AI models, such as strange patterns in fine details (hair, fabric), garbled text, or signature watermarks from generation tools.

Based on this comprehensive analysis, provide a final verdict, a trust score, a summary, and detailed findings for each category in the requested JSON format.`

const videoForensicsPrompt = `Act as a forensic video analyst specializing in detecting AI-generated and manipulated videos (deepfakes). Perform a detailed examination of this video. Your analysis should evaluate the following key areas:
1.  **Facial & Speech Analysis:** Look for unnatural facial movements, lack of blinking, poor lip-sync with the audio, and strange emotional expressions.
2.  **Scene & Object Consistency:** Analyze if objects or background elements behave consistently throughout the video. Look for illogical changes, flickering, or morphing.
3.  **Audio-Visual Sync:** Check the synchronization between audio events and visual cues.
4.  **Compression & Artifacts:** Identify unusual digital artifacts, blurring around faces, or inconsistencies in video quality that might indicate manipulation.

Based on this comprehensive analysis, provide a final verdict, a trust score, a summary, and detailed findings for each category in the requested JSON format.`

// Client is the Gemini-backed Gateway implementation
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed gateway. The API key is required; when
// it is absent callers should fall back to Unconfigured instead.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Close releases the underlying client. The genai client holds no
// resources that require explicit release, so this is a no-op.
func (c *Client) Close() error {
	return nil
}

// AnalyzeImage runs forensic analysis on an image and returns a validated
// authenticity assessment.
func (c *Client) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*models.MediaAnalysis, error) {
	return c.analyzeMedia(ctx, data, mimeType, imageForensicsPrompt, imageForensicsSchema, "image")
}

// AnalyzeVideo runs deepfake analysis on a video and returns a validated
// authenticity assessment.
func (c *Client) AnalyzeVideo(ctx context.Context, data []byte, mimeType string) (*models.MediaAnalysis, error) {
	return c.analyzeMedia(ctx, data, mimeType, videoForensicsPrompt, videoForensicsSchema, "video")
}

func (c *Client) analyzeMedia(ctx context.Context, data []byte, mimeType, prompt string, schema *genai.Schema, kind string) (*models.MediaAnalysis, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", kind, err)
	}

	analysis, err := parseMediaAnalysis(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("failed to analyze %s: %w", kind, err)
	}
	return analysis, nil
}

// VerifyNews fact-checks a news headline or article text
func (c *Client) VerifyNews(ctx context.Context, query string) (*models.NewsVerificationResult, error) {
	prompt := fmt.Sprintf(`Act as an expert fact-checker and media analyst. Analyze the following news headline or article text for bias, misinformation, and propaganda techniques.

News to analyze: %q

Your analysis should cover these points:
1.  **Factual Accuracy:** Cross-reference the claims (conceptually) against known facts.
2.  **Source Credibility:** Assess the likely credibility of the source making this claim.
3.  **Language and Tone:** Look for emotionally charged words, sensationalism, or biased framing.
4.  **Propaganda Techniques:** Identify any logical fallacies or manipulation tactics (e.g., ad hominem, whataboutism, fear-mongering, appeal to emotion).

Provide your analysis in the requested JSON format. The summary should be neutral and objective. The key findings should be specific and actionable.`, query)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   newsAnalysisSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify news: %w", err)
	}

	result, err := parseNewsVerification(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("failed to verify news: %w", err)
	}
	return result, nil
}

// AnalyzeURL assesses a URL for threats, grounded in Google Search results.
// This operation uses the search tool, which excludes JSON mode, so the
// response is a fixed line-oriented text format parsed on this side.
func (c *Client) AnalyzeURL(ctx context.Context, url string) (*models.URLAnalysisResult, error) {
	prompt := fmt.Sprintf(`Act as a senior cybersecurity analyst. Your task is to analyze the following URL for potential threats and provide a safety assessment grounded in Google Search results.

URL to analyze: %q

Analyze for threats including, but not limited to:
- Phishing and social engineering
- Malware or virus distribution
- Scams or fraudulent activity
- Deceptive practices or misinformation

Based on your analysis, provide your response strictly in the following format. Do not add any introductory text, explanations, or markdown formatting.

Verdict: [One of: Safe, Caution, Dangerous, Unknown]
Summary: [A concise, one-paragraph summary of your findings and recommendation.]
Threats Found: [A comma-separated list of specific threats detected. If none, write "None".]`, url)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze URL: %w", err)
	}

	result := parseURLAnalysis(resp.Text())
	result.Sources = groundingSources(resp)
	return result, nil
}

// GenerateLearningContent creates a lesson and quiz for a learning module
func (c *Client) GenerateLearningContent(ctx context.Context, title, description string, ageGroup models.AgeGroup) (*models.ModuleContent, error) {
	prompt := fmt.Sprintf(`Act as an expert cybersecurity educator. Create a short, engaging lesson and a 3-question multiple-choice quiz on the topic of '%s'.

The lesson should be tailored for the '%s' age group. The general description of the lesson is: '%s'.

The lesson content should be clear, concise, and easy to understand, formatted with basic markdown (e.g., headers, lists, bold). For the quiz, each question must have exactly 4 options and a clear correct answer. Also, provide a brief explanation for why the correct answer is right.

Respond strictly in the required JSON format.`, title, ageGroup, description)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   learningContentSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate lesson: %w", err)
	}

	content, err := parseLearningContent(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("failed to generate lesson: %w", err)
	}
	return content, nil
}

// groundingSources extracts the web sources that grounded a search-backed
// response. Chunks without a URI are dropped.
func groundingSources(resp *genai.GenerateContentResponse) []models.GroundingSource {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var sources []models.GroundingSource
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Untitled Source"
		}
		sources = append(sources, models.GroundingSource{
			URI:   chunk.Web.URI,
			Title: title,
		})
	}
	return sources
}
