// Package soap renders the generation prompts for the derived sections of a
// SOAP note.
package soap

import (
	"fmt"
	"strings"
)

const assessmentFormat = `## ASSESSMENT
---

### Diagnosis / Impression:
{Summarize the patient’s condition(s) as concluded from the subjective and objective data. Include both primary and secondary diagnoses.}

### Differential Diagnosis (DDx):
{If a definitive diagnosis is not established, list possible diagnoses in order of likelihood, with rationale for each.}`

const assessmentTemplate = `You are an AI medical assistant. Your task is to generate the ASSESSMENT section of a medical SOAP note.
Use the provided Subjective and Objective information to create a concise and clinically relevant Assessment.
The Assessment should strictly follow this format:
%s

SUBJECTIVE
---
%s

OBJECTIVE
---
%s

Now, please generate *only* the ASSESSMENT section based on the above information and the guidelines provided.
Do not include "ASSESSMENT" heading in your response, start directly with "### Diagnosis / Impression:".
`

const planPrefix = `You are an AI medical assistant. Based on the provided Subjective, Objective, and Assessment sections of a SOAP note, generate the PLAN section.
The PLAN section should include:
1. Diagnostics / Tests Ordered: List any additional diagnostic tests ordered and the rationale.
2. Medications / Therapy: Document any medications prescribed, changes to existing meds, or therapies initiated.
3. Referrals / Consults: Include any specialist referrals or consultations.
4. Patient Education & Counseling: Summarize education provided (diagnosis, treatment, medications, lifestyle).
5. Follow-Up Instructions: State when to return for follow-up, or instructions for earlier return if symptoms worsen.

Use the following format for the PLAN:
PLAN
---
### Diagnostics / Tests Ordered:
[Your generated diagnostics/tests here]

### Medications / Therapy:
[Your generated medications/therapy here]

### Referrals / Consults:
[Your generated referrals/consults here]

### Patient Education & Counseling:
[Your generated patient education/counseling here]

### Follow-Up Instructions:
[Your generated follow-up instructions here]

Here is the patient's information:
`

const planTemplate = `%s
SUBJECTIVE
---
%s

OBJECTIVE
---
%s

ASSESSMENT
---
%s

Now, please generate only the PLAN section based on ALL the above information (Subjective, Objective, and Assessment) and the guidelines provided.
`

const summaryTemplate = `You are an AI medical assistant. Based on the complete SOAP note provided below (Subjective, Objective, Assessment, and Plan), generate a concise clinical summary of the patient encounter.

SUBJECTIVE:
%s

OBJECTIVE:
%s

ASSESSMENT:
%s

PLAN:
%s

Now, please generate a concise clinical summary of this entire encounter.
`

// Markers one of which a well formed assessment must contain.
var AssessmentMarkers = []string{
	"Diagnosis / Impression:",
	"Differential Diagnosis (DDx):",
}

var planKeywords = []string{"DIAGNOSTICS", "MEDICATIONS", "THERAPY", "REFERRALS", "EDUCATION", "FOLLOW-UP"}

func AssessmentPrompt(subjective, objective string) string {
	return fmt.Sprintf(assessmentTemplate, assessmentFormat, subjective, objective)
}

func PlanPrompt(subjective, objective, assessment string) string {
	return fmt.Sprintf(planTemplate, planPrefix, subjective, objective, assessment)
}

func SummaryPrompt(subjective, objective, assessment, plan string) string {
	return fmt.Sprintf(summaryTemplate, subjective, objective, assessment, plan)
}

// LooksLikeAssessment reports whether text carries at least one assessment heading.
func LooksLikeAssessment(text string) bool {
	for _, marker := range AssessmentMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// LooksLikePlan is a loose, case-insensitive check for plan headings.
func LooksLikePlan(text string) bool {
	upper := strings.ToUpper(text)
	if strings.Contains(upper, "PLAN") {
		return true
	}
	for _, kw := range planKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}
