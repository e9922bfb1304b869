// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"slidepress/internal/imageref"
	"slidepress/internal/models"
)

// creativeBackground is applied to the opening and closing slides when the
// creative style is selected.
const creativeBackground = "#667eea"

// companyNames feeds the example lines of synthesized slides.
var companyNames = []string{
	"Meridian Systems", "Northwind Analytics", "Cascade Labs",
	"Summit Digital", "BlueHarbor Group", "Vertex Dynamics",
	"Orchard Technologies", "Ironleaf Consulting",
}

// topicBucket picks the image query family for a topic. Only imagery
// depends on the bucket; the narrative works for any topic.
type topicBucket int

const (
	bucketGeneric topicBucket = iota
	bucketHealthcare
	bucketTech
)

func bucketFor(topic string) topicBucket {
	t := strings.ToLower(topic)
	if strings.Contains(t, "health") || strings.Contains(t, "medical") {
		return bucketHealthcare
	}
	if strings.Contains(t, "ai") || strings.Contains(t, "tech") || strings.Contains(t, "digital") {
		return bucketTech
	}
	return bucketGeneric
}

// imageQueries maps each of the seven slide positions to a query per
// bucket, indexed [position][bucket].
var imageQueries = [7][3]string{
	{"business-strategy", "healthcare-technology", "technology-innovation"},
	{"market-analysis", "medical-research", "data-analytics-dashboard"},
	{"success-metrics", "healthcare-improvement", "business-growth-chart"},
	{"implementation-roadmap", "healthcare-workflow", "project-management"},
	{"risk-management", "healthcare-challenges", "problem-solving"},
	{"future-trends", "future-healthcare", "future-technology"},
	{"business-success", "healthcare-success", "success-celebration"},
}

// fallbackLayouts is the fixed layout sequence of a synthesized deck.
var fallbackLayouts = [7]models.Layout{
	models.LayoutTitle,
	models.LayoutDetailed,
	models.LayoutSplit,
	models.LayoutDetailed,
	models.LayoutComparison,
	models.LayoutImage,
	models.LayoutConclusion,
}

// Synthesize builds a complete presentation body locally, with no network
// access and no failure modes. It is the silent fallback behind every
// generation path and must therefore accept any topic string.
func Synthesize(topic string, style models.Style) []models.Slide {
	bucket := bucketFor(topic)
	lower := strings.ToLower(topic)
	year := time.Now().Year()

	drafts := []models.Slide{
		{
			Layout:   models.LayoutTitle,
			Title:    fmt.Sprintf("%s: A Comprehensive Analysis", topic),
			Subtitle: fmt.Sprintf("Strategic Insights and Implementation Roadmap for %d", year),
			BulletPoints: []string{
				fmt.Sprintf("Understanding the transformative potential of %s", lower),
				"Strategic implications for organizational growth",
				"Evidence-based recommendations for implementation",
				"Future-proofing strategies for sustained success",
			},
			DetailedContent: narrative(narrativeIntroduction, lower),
		},
		{
			Layout:   models.LayoutDetailed,
			Title:    "Market Landscape and Current State Analysis",
			Subtitle: "Understanding the ecosystem and competitive dynamics",
			BulletPoints: []string{
				"Current market size and growth trajectory analysis",
				"Key players and competitive positioning strategies",
				"Emerging trends and technological developments",
				"Regulatory environment and compliance requirements",
			},
			DetailedContent: narrative(narrativeAnalysis, lower),
		},
		{
			Layout:   models.LayoutSplit,
			Title:    "Strategic Benefits and Value Proposition",
			Subtitle: "Quantifiable advantages and competitive differentiation",
			BulletPoints: []string{
				"Operational efficiency improvements and cost optimization",
				"Revenue enhancement through new service models",
				"Customer experience transformation and satisfaction gains",
				"Risk mitigation and compliance advantages",
			},
			DetailedContent: narrative(narrativeBenefits, lower),
		},
		{
			Layout:   models.LayoutDetailed,
			Title:    "Implementation Strategy and Roadmap",
			Subtitle: "Systematic approach to successful deployment",
			BulletPoints: []string{
				"Phase 1: Strategic planning and readiness assessment",
				"Phase 2: Pilot program development and controlled testing",
				"Phase 3: Scaled deployment with performance monitoring",
				"Phase 4: Optimization and continuous improvement",
			},
			DetailedContent: narrative(narrativeImplementation, lower),
		},
		{
			Layout:   models.LayoutComparison,
			Title:    "Challenges and Mitigation Strategies",
			Subtitle: "Addressing common obstacles and risk factors",
			BulletPoints: []string{
				"Technical integration complexity and legacy system compatibility",
				"Change management resistance and organizational readiness",
				"Resource constraints and budget considerations",
				"Skill gaps and training requirements",
			},
			DetailedContent: narrative(narrativeChallenges, lower),
		},
		{
			Layout:   models.LayoutImage,
			Title:    "Future Trends and Strategic Implications",
			Subtitle: "Emerging opportunities and long-term considerations",
			BulletPoints: []string{
				"Technology evolution and capability advancement timeline",
				"Market dynamics and competitive landscape changes",
				"Regulatory developments and compliance implications",
				"Investment trends and funding pattern analysis",
			},
			DetailedContent: narrative(narrativeFuture, lower),
		},
		{
			Layout:   models.LayoutConclusion,
			Title:    "Strategic Recommendations and Next Steps",
			Subtitle: "Actionable insights for immediate implementation",
			BulletPoints: []string{
				fmt.Sprintf("Immediate action: Begin %s readiness assessment within 30 days", lower),
				"Establish cross-functional implementation team with executive sponsorship",
				"Conduct comprehensive pilot program to validate approach and metrics",
				"Develop phased roadmap with clear milestones and success criteria",
			},
			DetailedContent: narrative(narrativeConclusion, lower),
		},
	}

	for i := range drafts {
		s := &drafts[i]
		s.Layout = fallbackLayouts[i]
		s.ImageQuery = imageQueries[i][bucket]
		s.ImageURL = imageref.Resolve(s.ImageQuery, 800, 600)
		if s.Layout == models.LayoutDetailed {
			s.SecondaryImageURL = imageref.Resolve(s.ImageQuery+"-data-chart", 400, 300)
		}
		if style == models.StyleCreative &&
			(s.Layout == models.LayoutTitle || s.Layout == models.LayoutConclusion) {
			s.BackgroundColor = creativeBackground
		}
		s.Content = fmt.Sprintf("An in-depth exploration of %s and its strategic implications for modern organizations.", lower)
		s.KeyPoints = []string{
			fmt.Sprintf("Market opportunity: $%d billion", between(50, 500)),
			fmt.Sprintf("Growth rate: %d%% annually", between(15, 45)),
		}
		s.Examples = []string{
			fmt.Sprintf("%s achieved %d%% efficiency improvement",
				companyNames[rand.IntN(len(companyNames))], between(25, 60)),
		}
		s.Statistics = []string{
			fmt.Sprintf("%d%% of industry leaders prioritize this initiative", between(75, 95)),
		}
	}

	return drafts
}

// between draws a uniform integer in [lo, hi], both ends inclusive.
func between(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}
