package advisor

import "fmt"

func narrativePrompt(summary string) string {
	return fmt.Sprintf(`You are an insightful and encouraging AI career counselor. Based on the following student psychometric profile summary:
%s

Please generate a 2-3 paragraph personalized narrative overview for this student.
This narrative should:
- Be positive and encouraging.
- Highlight key strengths and tendencies indicated by the profile.
- Offer a brief, holistic interpretation of what these traits together might mean for the student's approach to learning, work, and decision-making.
- Be written in a way that is easy for a student (ages 12-18) to understand and relate to.
- Do NOT give specific career or stream suggestions in this narrative, as those will be provided separately.
- Respond ONLY with the narrative text. Do not include greetings, sign-offs, or any other surrounding text.`, summary)
}

func careerSuggestionsPrompt(summary string) string {
	return fmt.Sprintf(`You are an expert AI career counselor. Based on the student's psychometric profile summary:
%s
Suggest 3 diverse career paths suitable for a student in India (common age range 12-18).
For each career:
- 'name': The career title.
- 'description': Brief description (max 30 words).
- 'rationale': Concise explanation of alignment with profile (max 30 words).
- 'educationPathIndia': Typical educational pathway in India.
- 'dayInTheLifeNarrative': A short, engaging "Day in the Life" summary for this career (1-2 sentences, max 40 words).
- 'iscoCode': Provide the most accurate 4-digit ISCO-08 (International Standard Classification of Occupations) unit group code for this career. If unsure, provide the closest possible 4-digit code.

Return ONLY a valid JSON array of objects.`, summary)
}

func streamSuggestionsPrompt(summary string) string {
	return fmt.Sprintf(`You are an expert AI academic advisor. Based on the student psychometric profile summary:
%s
Suggest 2-3 suitable academic streams for a student in India (after 10th grade).
For each stream:
- 'name': Stream name (e.g., "Science (PCM Focus)").
- 'description': Brief overview (max 30 words).
- 'rationale': Concise explanation of alignment with profile (max 30 words).
- 'subjects': Array of 3-5 key subjects.

Return ONLY a valid JSON array of objects.`, summary)
}

func skillRecommendationsPrompt(summary, careerContext string) string {
	context := fmt.Sprintf("Based on the following student psychometric profile summary:\n%s", summary)
	if careerContext != "" {
		context += fmt.Sprintf("\nAnd considering their interest in the career/area of: %s", careerContext)
	}
	return fmt.Sprintf(`%s
Suggest 2-3 key skills that would be beneficial for this student to develop. These skills should be relevant to their profile and potential career interests.
For each skill:
- 'skillName': The name of the skill (e.g., "Python Programming", "Critical Thinking", "Public Speaking").
- 'description': A brief explanation of the skill (max 20 words).
- 'relevance': How this skill is relevant to the student's profile or potential interests (max 30 words).
- 'learningResources': An array of 1-2 suggested learning resources. Each resource object should have 'title', 'url' (use placeholder '#' if actual URL unknown), and 'type' (e.g., "Online Course", "Book", "Website").

Return your response ONLY as a valid JSON array of objects.`, context)
}

func deepDivePrompt(title, code string) string {
	return fmt.Sprintf(`Provide a comprehensive deep-dive into the following occupation from the ISCO-08 framework:
Title: %s
Code: %s

Focus on the Indian labor market where possible.
Include:
- 'salaryIndia': Typical monthly salary range in INR for early and mid-career professionals.
- 'marketDemand': A qualitative description of current demand in India.
- 'automationRisk': Estimated risk of AI automation (Low/Medium/High) with a brief reason.
- 'topSkills': Array of 3-5 specific technical or soft skills crucial for success.
- 'growthPotential': Future outlook for this role over the next 10 years.
- 'careerPathSummary': 1-2 sentences on the typical advancement path.

Return ONLY a valid JSON object.`, title, code)
}

func careerImagePrompt(careerName string) string {
	return fmt.Sprintf("A hopeful and positive depiction of a young student in India imagining themselves as a %s. Professional setting, bright, aspirational.", careerName)
}

func mentorSystemPrompt(profileSummary string) string {
	return fmt.Sprintf(`You are NextStep, a friendly and helpful career and academic mentor for students (ages 12-18). You are chatting with a student who has just completed a psychometric assessment.
Their profile summary is: %s
Keep your responses concise, encouraging, and easy to understand. Do not give financial advice or medical advice. Help them explore their results and options.
Answer questions based on their profile and the context of career/academic guidance.`, profileSummary)
}
