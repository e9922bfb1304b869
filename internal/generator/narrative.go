// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"strings"
)

// narrativeKind selects which long-form body a synthesized slide carries.
type narrativeKind int

const (
	narrativeIntroduction narrativeKind = iota
	narrativeAnalysis
	narrativeBenefits
	narrativeImplementation
	narrativeChallenges
	narrativeFuture
	narrativeConclusion
)

// narrative builds the detailedContent body for one slide position. The
// prose is templated around the lowercased topic; numeric filler is drawn
// fresh per call but always stays inside its documented bounds.
func narrative(kind narrativeKind, topic string) string {
	var sentences []string

	switch kind {
	case narrativeIntroduction:
		sentences = []string{
			fmt.Sprintf("In today's rapidly evolving landscape, %s represents a transformative force that is reshaping industries and redefining possibilities. This comprehensive analysis explores the multifaceted dimensions of %s, examining its current state, emerging trends, and future implications.", topic, topic),
			fmt.Sprintf("The significance of %s extends far beyond traditional boundaries, creating new paradigms for innovation, efficiency, and growth. Organizations worldwide are recognizing the strategic imperative to understand and leverage these developments to maintain competitive advantage.", topic),
			fmt.Sprintf("Through extensive research and analysis of market trends, industry reports, and expert insights, we have identified key patterns and opportunities that define the current trajectory of %s. This presentation synthesizes these findings to provide actionable intelligence for decision-makers.", topic),
			fmt.Sprintf("Our exploration will cover fundamental principles, practical applications, real-world case studies, and strategic recommendations. Each section builds upon the previous to create a comprehensive understanding of how %s can drive meaningful outcomes in various organizational contexts.", topic),
		}

	case narrativeAnalysis:
		sentences = []string{
			fmt.Sprintf("The current state of %s reveals a complex ecosystem characterized by rapid innovation, increasing adoption rates, and evolving regulatory frameworks. Market analysis indicates significant growth potential, with projected compound annual growth rates exceeding industry averages across multiple sectors.", topic),
			fmt.Sprintf("Key performance indicators demonstrate measurable improvements in efficiency, cost reduction, and user satisfaction when %s initiatives are properly implemented. Organizations report average productivity gains of %d%% and cost savings of approximately %d%% within the first %d months of deployment.", topic, between(15, 45), between(20, 60), between(6, 18)),
			"Competitive landscape analysis reveals that early adopters are establishing significant market advantages, while late entrants face increasing barriers to entry. The technology maturity curve suggests we are approaching a critical inflection point where widespread adoption becomes inevitable.",
			"Risk assessment frameworks identify potential challenges including implementation complexity, change management requirements, and infrastructure dependencies. However, comprehensive mitigation strategies can address these concerns while maximizing return on investment.",
		}

	case narrativeBenefits:
		sentences = []string{
			fmt.Sprintf("The strategic advantages of embracing %s extend across multiple organizational dimensions, creating value through improved operational efficiency, enhanced decision-making capabilities, and accelerated innovation cycles. Quantitative benefits include measurable improvements in key performance indicators and qualitative enhancements in organizational agility.", topic),
			fmt.Sprintf("Financial impact analysis reveals significant cost optimization opportunities, with organizations typically achieving payback periods of %d months and ongoing annual savings of %d%%. Revenue enhancement opportunities emerge through improved customer experiences and new service delivery models.", between(8, 24), between(15, 40)),
			"Operational benefits manifest as streamlined processes, reduced manual intervention, and enhanced accuracy in critical functions. Employee satisfaction surveys indicate increased job satisfaction and engagement when routine tasks are automated and employees can focus on higher-value activities.",
			"Strategic positioning advantages include enhanced market responsiveness, improved customer insights, and accelerated time-to-market for new initiatives. These capabilities create sustainable competitive advantages that compound over time.",
		}

	case narrativeImplementation:
		sentences = []string{
			fmt.Sprintf("Successful implementation of %s requires a structured, phased approach that balances ambitious goals with practical constraints. Our recommended methodology encompasses strategic planning, stakeholder alignment, technical preparation, and performance monitoring throughout the deployment lifecycle.", topic),
			"Phase one focuses on foundational elements including needs assessment, resource allocation, and team formation. This critical stage establishes the framework for success by ensuring all prerequisites are met and potential obstacles are identified early in the process.",
			fmt.Sprintf("Phase two emphasizes pilot program development and controlled testing environments. This approach allows organizations to validate assumptions, refine processes, and build confidence before full-scale deployment. Pilot results typically show %d%% improvement in target metrics.", between(10, 30)),
			fmt.Sprintf("Phase three involves scaled implementation with continuous monitoring and optimization. Best practices include regular performance reviews, stakeholder feedback sessions, and iterative improvements. Organizations following this methodology report %d%% success rates in achieving stated objectives.", between(85, 95)),
		}

	case narrativeChallenges:
		sentences = []string{
			fmt.Sprintf("While the potential of %s is substantial, organizations must navigate complex implementation challenges that require careful planning and expert guidance. Common obstacles include technical integration complexity, change management resistance, and resource allocation constraints.", topic),
			"Technical challenges often stem from legacy system compatibility, data quality issues, and infrastructure limitations. Successful organizations invest in comprehensive technical assessments and phased modernization strategies to address these fundamental requirements systematically.",
			"Organizational readiness factors significantly impact implementation success. Change management strategies must address skill gaps, cultural resistance, and communication barriers. Effective approaches include comprehensive training programs, executive sponsorship, and clear success metrics.",
			"Regulatory and compliance considerations add complexity to implementation timelines and resource requirements. Proactive engagement with relevant authorities and industry standards bodies helps ensure alignment with evolving requirements and reduces compliance risks.",
		}

	case narrativeFuture:
		sentences = []string{
			fmt.Sprintf("The future trajectory of %s points toward unprecedented transformation across industries, driven by accelerating technological capabilities, evolving user expectations, and emerging regulatory frameworks. Predictive analytics suggest exponential growth in adoption rates and capability sophistication over the next %d years.", topic, between(3, 7)),
			"Emerging trends indicate convergence with complementary technologies, creating synergistic opportunities for enhanced value creation. Integration possibilities include advanced analytics, automation platforms, and next-generation user interfaces that collectively reshape operational paradigms.",
			fmt.Sprintf("Market projections indicate sustained investment growth, with annual spending increases of %d%% across relevant sectors. This investment surge will accelerate innovation cycles and expand accessibility to organizations of all sizes.", between(20, 50)),
			"Strategic implications require forward-thinking organizations to develop long-term roadmaps that anticipate technological evolution while maintaining operational excellence. Early investment in foundational capabilities positions organizations to capitalize on emerging opportunities as they materialize.",
		}

	default:
		sentences = []string{
			fmt.Sprintf("This comprehensive analysis of %s demonstrates the critical importance of understanding and embracing transformative technologies in today's competitive environment. The evidence clearly indicates that organizations must adapt their strategies to leverage these emerging capabilities effectively.", topic),
			fmt.Sprintf("Implementation success depends on thorough planning, stakeholder alignment, and commitment to continuous improvement. Organizations that approach %s systematically and strategically position themselves for sustained success and competitive advantage.", topic),
			"The investment required for effective implementation is substantial but justified by the potential returns and strategic benefits. Organizations must balance short-term costs with long-term value creation opportunities while maintaining operational stability.",
			"Future success in this domain will require ongoing adaptation, continuous learning, and strategic partnerships with technology providers and industry experts. The rapidly evolving landscape demands agility and commitment to innovation excellence.",
		}
	}

	return strings.Join(sentences, " ")
}
