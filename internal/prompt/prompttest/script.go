// Copyright (c) 2025 Hostcheck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package prompttest provides a scripted prompt.Prompter for workflow tests.
package prompttest

// Script answers prompts in order. Once the answers run out every prompt gets
// an empty string, like a closed stdin.
type Script struct {
	Answers []string
	Prompts []string
	Secrets []string // prompts that were asked through Secret
}

// New returns a Script with the given answers.
func New(answers ...string) *Script { return &Script{Answers: answers} }

func (s *Script) next(p string) string {
	s.Prompts = append(s.Prompts, p)
	if len(s.Answers) == 0 {
		return ""
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a
}

// Line implements prompt.Prompter.
func (s *Script) Line(p string) (string, error) { return s.next(p), nil }

// Secret implements prompt.Prompter.
func (s *Script) Secret(p string) (string, error) {
	s.Secrets = append(s.Secrets, p)
	return s.next(p), nil
}
