package dialogue

import (
	"fmt"
	"strings"
)

// Prompt template roles.
const (
	RoleQuestionAgent = "question_agent"
	RolePeerAgent     = "peer_agent"
	RoleTeacherAgent  = "teacher_agent"
	RoleSummaryAgent  = "summary_agent"
)

var promptTemplates = map[string]string{
	RoleQuestionAgent: "Create a short conceptual or coding prompt about {topic} at {difficulty} difficulty. " +
		"Keep it precise and testable; include a function name or an explicit task.",

	RolePeerAgent: "You are a peer student in a study group. Given the question: {question}\n" +
		"Reply in 2-5 sentences. Your answer should be plausibly half-right:\n" +
		"- Include at least one correct piece of reasoning.\n" +
		"- Insert one common mistake (e.g., wrong time complexity, off-by-one error, incorrect edge case).\n" +
		"Do not mark which part is wrong. Make it sound natural, as if you believed it.",

	RoleTeacherAgent: "You are the teacher. Given question: {question}\n" +
		"Peer attempt: {peer_answer}\n" +
		"Learner input: {learner_input}\n" +
		"If the peer made mistakes, point them out and give a hint to guide toward the right idea. " +
		"Only give the full solution if asked explicitly twice.",

	RoleSummaryAgent: "Produce a concise bulleted summary of this study session.\n" +
		"Question: {question}\n" +
		"Peer attempt: {peer_answer}\n" +
		"Teacher reply: {teacher_reply}\n" +
		"Include: the question, the peer's mistake(s), the teacher's correction, and 2 follow-up practice tasks.",
}

// RenderPrompt fills the {placeholder} slots of the template for role.
// Unknown roles are an error; a var with no slot in the template is ignored.
func RenderPrompt(role string, vars map[string]string) (string, error) {
	template, ok := promptTemplates[role]
	if !ok {
		return "", fmt.Errorf("no prompt template for role %q", role)
	}
	out := template
	for key, value := range vars {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out, nil
}
