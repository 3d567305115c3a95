package assessment

// Question is a single questionnaire item. Category holds the framework's
// own category value (a BigFiveCategory, MBTIAxis, RIASECCategory, or
// ValueCategory as a string); Pole is set only for MBTI items.
type Question struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Framework Framework `json:"framework"`
	Category  string    `json:"category"`
	Pole      MBTIPole  `json:"pole,omitempty"`
}

// LikertOption is one point on the five-point agreement scale.
type LikertOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// LikertScale returns the answer options every question is rated on.
func LikertScale() []LikertOption {
	return []LikertOption{
		{Value: 1, Label: "Strongly Disagree"},
		{Value: 2, Label: "Disagree"},
		{Value: 3, Label: "Neutral"},
		{Value: 4, Label: "Agree"},
		{Value: 5, Label: "Strongly Agree"},
	}
}

// Questions returns the fixed question bank in presentation order.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}

// QuestionByID looks up a bank question; ok is false for unknown ids.
func QuestionByID(id string) (Question, bool) {
	for _, q := range questionBank {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

var questionBank = []Question{
	// Big Five, two items per trait.
	{ID: "b5_o1", Text: "I enjoy trying new and different activities, even if they seem unusual.", Framework: FrameworkBigFive, Category: string(Openness)},
	{ID: "b5_o2", Text: "I am curious and love exploring places or learning about how things work.", Framework: FrameworkBigFive, Category: string(Openness)},
	{ID: "b5_c1", Text: "I always try to complete my schoolwork or tasks before doing something fun.", Framework: FrameworkBigFive, Category: string(Conscientiousness)},
	{ID: "b5_c2", Text: "I make plans (like a schedule or list) and try to follow them.", Framework: FrameworkBigFive, Category: string(Conscientiousness)},
	{ID: "b5_e1", Text: "I enjoy being around people and having lively conversations.", Framework: FrameworkBigFive, Category: string(Extraversion)},
	{ID: "b5_e2", Text: "I often feel energized when I am with a group of friends.", Framework: FrameworkBigFive, Category: string(Extraversion)},
	{ID: "b5_a1", Text: "I enjoy helping other people when they have a problem.", Framework: FrameworkBigFive, Category: string(Agreeableness)},
	{ID: "b5_a2", Text: "I believe it is important to be kind and understanding to others.", Framework: FrameworkBigFive, Category: string(Agreeableness)},
	{ID: "b5_n1", Text: "I often feel anxious or worried about things that might happen.", Framework: FrameworkBigFive, Category: string(Neuroticism)},
	{ID: "b5_n2", Text: "I get upset or irritated easily, even by small issues.", Framework: FrameworkBigFive, Category: string(Neuroticism)},

	// MBTI, one item per pole.
	{ID: "mbti_ei_e", Text: "I feel energized and enthusiastic when I am with friends or a group of people.", Framework: FrameworkMBTI, Category: string(AxisEI), Pole: PoleExtraversion},
	{ID: "mbti_ei_i", Text: "After being with people for a long time, I need some time alone to relax.", Framework: FrameworkMBTI, Category: string(AxisEI), Pole: PoleIntroversion},
	{ID: "mbti_sn_s", Text: "I prefer to focus on facts and details that I can observe.", Framework: FrameworkMBTI, Category: string(AxisSN), Pole: PoleSensing},
	{ID: "mbti_sn_n", Text: "I enjoy thinking about new ideas and imagining how things could be.", Framework: FrameworkMBTI, Category: string(AxisSN), Pole: PoleIntuition},
	{ID: "mbti_tf_t", Text: "I make decisions based on logic and reason rather than my feelings.", Framework: FrameworkMBTI, Category: string(AxisTF), Pole: PoleThinking},
	{ID: "mbti_tf_f", Text: "I care more about other people's feelings when making decisions.", Framework: FrameworkMBTI, Category: string(AxisTF), Pole: PoleFeeling},
	{ID: "mbti_jp_j", Text: "I like keeping my plans and schedules organized.", Framework: FrameworkMBTI, Category: string(AxisJP), Pole: PoleJudging},
	{ID: "mbti_jp_p", Text: "I enjoy leaving my options open and being spontaneous.", Framework: FrameworkMBTI, Category: string(AxisJP), Pole: PolePerceiving},

	// RIASEC, two items per interest code.
	{ID: "riasec_r1", Text: "I enjoy building or fixing things (like models, machines, or gadgets).", Framework: FrameworkRIASEC, Category: string(Realistic)},
	{ID: "riasec_r2", Text: "I like working outdoors (for example, gardening, hiking, or sports).", Framework: FrameworkRIASEC, Category: string(Realistic)},
	{ID: "riasec_i1", Text: "I enjoy doing science experiments or learning about science.", Framework: FrameworkRIASEC, Category: string(Investigative)},
	{ID: "riasec_i2", Text: "I like solving puzzles and brainteasers.", Framework: FrameworkRIASEC, Category: string(Investigative)},
	{ID: "riasec_a1", Text: "I enjoy drawing, painting, or other art activities.", Framework: FrameworkRIASEC, Category: string(Artistic)},
	{ID: "riasec_a2", Text: "I like playing a musical instrument or singing.", Framework: FrameworkRIASEC, Category: string(Artistic)},
	{ID: "riasec_s1", Text: "I enjoy helping other people with their problems.", Framework: FrameworkRIASEC, Category: string(Social)},
	{ID: "riasec_s2", Text: "I like teaching or explaining things to friends or classmates.", Framework: FrameworkRIASEC, Category: string(Social)},
	{ID: "riasec_e1", Text: "I enjoy leading others and taking charge of group activities.", Framework: FrameworkRIASEC, Category: string(Enterprising)},
	{ID: "riasec_e2", Text: "I like to persuade people to follow my ideas.", Framework: FrameworkRIASEC, Category: string(Enterprising)},
	{ID: "riasec_c1", Text: "I like organizing things (like my room or files) in a neat way.", Framework: FrameworkRIASEC, Category: string(Conventional)},
	{ID: "riasec_c2", Text: "I enjoy working with numbers and data (like math problems or charts).", Framework: FrameworkRIASEC, Category: string(Conventional)},

	// Work values, one item per value.
	{ID: "val_aut1", Text: "I prefer to work independently and make my own decisions about how to do things.", Framework: FrameworkValues, Category: string(Autonomy)},
	{ID: "val_team1", Text: "I achieve more and enjoy work most when I am part of a collaborative team.", Framework: FrameworkValues, Category: string(Teamwork)},
	{ID: "val_stab1", Text: "Having a secure and predictable job is very important to me.", Framework: FrameworkValues, Category: string(Stability)},
	{ID: "val_innov1", Text: "I am excited by opportunities to work on new, cutting-edge projects and ideas.", Framework: FrameworkValues, Category: string(Innovation)},
	{ID: "val_wlb1", Text: "It is important for me to have a good balance between my work/studies and my personal life.", Framework: FrameworkValues, Category: string(WorkLifeBalance)},
}
