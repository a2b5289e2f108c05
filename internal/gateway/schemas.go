package gateway

import "google.golang.org/genai"

// Structured-output schemas for the JSON-mode operations. The enum
// vocabularies here are the source of truth for the verdict and category
// strings the rest of the service displays.

var mediaVerdictEnum = []string{
	"Likely Authentic",
	"Potentially Manipulated",
	"Likely AI-Generated",
	"High Confidence AI-Generated",
}

func forensicsSchema(subject string, categories []string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"verdict": {
				Type:        genai.TypeString,
				Description: "A final verdict on the " + subject + "'s authenticity.",
				Enum:        mediaVerdictEnum,
			},
			"trust_score": {
				Type:        genai.TypeNumber,
				Description: "A score from 0 to 100 representing the likelihood the " + subject + " is authentic. 0 means very likely AI-generated/manipulated, 100 means very likely authentic.",
			},
			"summary": {
				Type:        genai.TypeString,
				Description: "A concise, one-paragraph summary of the overall analysis and the reasoning behind the verdict.",
			},
			"detailed_findings": {
				Type:        genai.TypeArray,
				Description: "A list of specific observations found during the analysis, categorized by area.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category": {
							Type:        genai.TypeString,
							Description: "The area of analysis.",
							Enum:        categories,
						},
						"finding": {
							Type:        genai.TypeString,
							Description: "A detailed description of the specific finding in this category.",
						},
						"severity": {
							Type:        genai.TypeString,
							Description: "The severity of the finding as an indicator of manipulation.",
							Enum:        []string{"Low", "Medium", "High"},
						},
					},
				},
			},
		},
		Required: []string{"verdict", "trust_score", "summary", "detailed_findings"},
	}
}

var imageForensicsSchema = forensicsSchema("image", []string{
	"Anatomy & Proportions",
	"Lighting & Shadows",
	"Background & Environment",
	"Texture & Detail",
	"AI Artifacts",
	"Other",
})

var videoForensicsSchema = forensicsSchema("video", []string{
	"Facial & Speech Analysis",
	"Scene & Object Consistency",
	"Audio-Visual Sync",
	"Compression & Artifacts",
	"Other",
})

var newsAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"verdict": {
			Type:        genai.TypeString,
			Description: "A final verdict on the news's truthfulness.",
			Enum:        []string{"Likely Factual", "Misleading", "Potentially False", "Unverifiable"},
		},
		"credibility_score": {
			Type:        genai.TypeNumber,
			Description: "A score from 0 to 100 representing the credibility of the news. 0 is not credible, 100 is highly credible.",
		},
		"summary": {
			Type:        genai.TypeString,
			Description: "A concise, one-paragraph summary of the analysis, explaining the verdict and key findings.",
		},
		"key_findings": {
			Type:        genai.TypeArray,
			Description: "A list of key observations from the analysis, like emotional language, lack of sources, etc.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"detected_biases": {
			Type:        genai.TypeArray,
			Description: "A list of specific propaganda techniques or logical fallacies detected.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"verdict", "credibility_score", "summary", "key_findings", "detected_biases"},
}

var learningContentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"content": {
			Type:        genai.TypeString,
			Description: "The full educational lesson content, formatted with markdown for readability (e.g., headers, lists, bold text). Should be engaging and easy to understand for the target age group.",
		},
		"quiz": {
			Type:        genai.TypeArray,
			Description: "A list of 3 multiple-choice questions to test understanding of the lesson content.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question": {
						Type:        genai.TypeString,
						Description: "The quiz question.",
					},
					"options": {
						Type:        genai.TypeArray,
						Description: "An array of 4 possible string answers for the question.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
					"correct_answer": {
						Type:        genai.TypeString,
						Description: "The correct answer from the options list.",
					},
					"explanation": {
						Type:        genai.TypeString,
						Description: "A brief explanation of why the correct answer is right.",
					},
				},
				Required: []string{"question", "options", "correct_answer", "explanation"},
			},
		},
	},
	Required: []string{"content", "quiz"},
}
