// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"

	"slidepress/internal/models"
)

// systemPrompt fixes the model's role and the strict-JSON output contract.
const systemPrompt = `You are an expert presentation creator AI. Your task is to generate a series of professional slides based on a user's topic and chosen style. You must return the output as a single, valid JSON object that strictly adheres to the provided schema. Do not include any markdown formatting, comments, or extraneous text outside of the JSON object.`

// userPrompt parameterizes the request with the topic and style and spells
// out the response schema the decoder expects.
func userPrompt(topic string, style models.Style) string {
	return fmt.Sprintf(`
Please generate a presentation on the topic: %q.
The desired style is: %q.

The presentation should have between 6 and 8 slides, including a title slide, several detailed content slides, and a conclusion slide.
For each slide, provide all the fields defined in the schema below.
For the main content slides (layout "detailed" or "split"), the "detailedContent" field must be very comprehensive, aiming for 400-500 words. It should be well-structured, professional, and insightful.
For every slide, provide a concise "imageQuery" string of 2-4 words that is highly relevant to the slide's content. This query will be used to find a suitable background or supporting image. Example queries: "financial-growth-chart", "team-collaboration-meeting", "futuristic-city-skyline". Use hyphens instead of spaces.

The expected JSON structure:

{
  "slides": [
    {
      "title": "string",
      "subtitle": "string (optional)",
      "bulletPoints": ["string"],
      "content": "string (optional)",
      "detailedContent": "string (optional)",
      "keyPoints": ["string (optional)"],
      "examples": ["string (optional)"],
      "statistics": ["string (optional)"],
      "imageQuery": "string",
      "layout": "title | content | image | split | conclusion | detailed | comparison",
      "backgroundColor": "string (optional)"
    }
  ]
}

Remember, your entire response must be ONLY the JSON object, without any other text or formatting.
`, topic, style)
}
