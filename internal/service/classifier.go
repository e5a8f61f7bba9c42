package service

import (
	"context"

	"najdimajstra/internal/bank"
	"najdimajstra/internal/model"
)

// Classifier answers turns of one service category
type Classifier struct {
	policy    Policy
	bank      *bank.Bank
	assembler *Assembler
}

// NewClassifier binds a policy to the shared assembler
func NewClassifier(policy Policy, b *bank.Bank, assembler *Assembler) *Classifier {
	return &Classifier{policy: policy, bank: b, assembler: assembler}
}

// NewUrgentClassifier creates the emergency classifier
func NewUrgentClassifier(b *bank.Bank, assembler *Assembler) *Classifier {
	return NewClassifier(UrgentPolicy(), b, assembler)
}

// NewRegularClassifier creates the routine-service classifier
func NewRegularClassifier(b *bank.Bank, assembler *Assembler) *Classifier {
	return NewClassifier(RegularPolicy(), b, assembler)
}

// NewRealizationClassifier creates the construction-project classifier
func NewRealizationClassifier(b *bank.Bank, assembler *Assembler) *Classifier {
	return NewClassifier(RealizationPolicy(), b, assembler)
}

// Category returns the category this classifier serves
func (c *Classifier) Category() model.Category {
	return c.policy.Category
}

// InitialMessage returns the category greeting
func (c *Classifier) InitialMessage(language model.Language) string {
	return c.bank.Text(language, c.policy.Category, bank.KindGreeting)
}

// ProcessMessage answers one user turn
func (c *Classifier) ProcessMessage(ctx context.Context, text string, history []model.Turn, language model.Language) model.AIResponse {
	return c.assembler.Assemble(ctx, c.policy, text, history, language)
}
