package questionnaires

import (
	"context"
	"errors"
	"fmt"

	"Backend-TechAudit/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Builder runs the bottom-up composition workflow that assembles questions
// under sections and sections under questionnaires. Multi-step creations
// roll back their own writes on failure, so a failed call leaves no partial
// tree behind.
type Builder struct {
	store Store
}

func NewBuilder(store Store) *Builder {
	return &Builder{store: store}
}

var defaultBuilder = NewBuilder(NewMongoStore())

// Default is the collection-backed builder the controllers use.
func Default() *Builder {
	return defaultBuilder
}

// rollback undoes completed steps in reverse order. Cleanup failures are
// swallowed: the original error is what the caller needs to see.
type rollback struct {
	steps []func(context.Context)
}

func (r *rollback) add(step func(context.Context)) {
	r.steps = append(r.steps, step)
}

func (r *rollback) run(ctx context.Context) {
	for i := len(r.steps) - 1; i >= 0; i-- {
		r.steps[i](ctx)
	}
}

// CreateQuestion creates a standalone question from a composition payload.
func (b *Builder) CreateQuestion(ctx context.Context, dto *models.QuestionDto) (*models.Question, error) {
	question := dto.ToQuestion()
	if ve := question.Validate(); ve != nil {
		return nil, ve
	}
	if err := b.store.InsertQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

// CreateSectionWithQuestions creates a section and its questions in one
// call. If any question fails, everything created so far is removed.
func (b *Builder) CreateSectionWithQuestions(ctx context.Context, dto *models.SectionDto) (*models.SectionStructure, error) {
	section := dto.ToSection()
	if ve := section.Validate(); ve != nil {
		return nil, ve
	}

	if err := b.store.InsertSection(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	var rb rollback
	rb.add(func(c context.Context) { b.store.DeleteSection(c, section.ID) })

	questions, err := b.createQuestionsUnder(ctx, &rb, section.ID, dto.Questions)
	if err != nil {
		rb.run(ctx)
		return nil, err
	}

	return &models.SectionStructure{Section: *section, Questions: questions}, nil
}

func (b *Builder) createQuestionsUnder(ctx context.Context, rb *rollback, sectionID primitive.ObjectID, dtos []models.QuestionDto) ([]models.Question, error) {
	questions := []models.Question{}
	for i := range dtos {
		question := dtos[i].ToQuestion()
		if ve := question.Validate(); ve != nil {
			return nil, ve
		}
		question.SectionID = &sectionID
		if err := b.store.InsertQuestion(ctx, question); err != nil {
			return nil, fmt.Errorf("failed to create question: %w", err)
		}
		id := question.ID
		rb.add(func(c context.Context) { b.store.DeleteQuestion(c, id) })
		questions = append(questions, *question)
	}
	return questions, nil
}

// CreateQuestionnaireWithSections creates a questionnaire together with new
// sections and their questions. The whole tree is created or none of it.
func (b *Builder) CreateQuestionnaireWithSections(ctx context.Context, dto *models.QuestionnaireDto) (*models.QuestionnaireStructure, error) {
	questionnaire := dto.ToQuestionnaire()
	if ve := questionnaire.Validate(); ve != nil {
		return nil, ve
	}

	if err := b.store.InsertQuestionnaire(ctx, questionnaire); err != nil {
		return nil, fmt.Errorf("failed to create questionnaire: %w", err)
	}

	var rb rollback
	rb.add(func(c context.Context) { b.store.DeleteQuestionnaire(c, questionnaire.ID) })

	structure, err := b.createSectionsUnder(ctx, &rb, questionnaire.ID, dto.Sections)
	if err != nil {
		rb.run(ctx)
		return nil, err
	}

	return &models.QuestionnaireStructure{Questionnaire: questionnaire, Structure: structure}, nil
}

func (b *Builder) createSectionsUnder(ctx context.Context, rb *rollback, questionnaireID primitive.ObjectID, dtos []models.SectionDto) ([]models.SectionStructure, error) {
	structure := []models.SectionStructure{}
	for i := range dtos {
		section := dtos[i].ToSection()
		if ve := section.Validate(); ve != nil {
			return nil, ve
		}
		section.QuestionnaireID = &questionnaireID
		if err := b.store.InsertSection(ctx, section); err != nil {
			return nil, fmt.Errorf("failed to create section: %w", err)
		}
		id := section.ID
		rb.add(func(c context.Context) { b.store.DeleteSection(c, id) })

		questions, err := b.createQuestionsUnder(ctx, rb, section.ID, dtos[i].Questions)
		if err != nil {
			return nil, err
		}
		structure = append(structure, models.SectionStructure{Section: *section, Questions: questions})
	}
	return structure, nil
}

// CreateTechnologyWithQuestionnaire creates a technology and, optionally,
// a full questionnaire tree linked to it.
func (b *Builder) CreateTechnologyWithQuestionnaire(ctx context.Context, dto *models.TechnologyDto) (*models.Technology, *models.QuestionnaireStructure, error) {
	technology := dto.ToTechnology()
	if ve := technology.Validate(); ve != nil {
		return nil, nil, ve
	}

	if err := b.store.InsertTechnology(ctx, technology); err != nil {
		return nil, nil, fmt.Errorf("failed to create technology: %w", err)
	}

	if dto.Questionnaire == nil {
		return technology, nil, nil
	}

	var rb rollback
	rb.add(func(c context.Context) { b.store.DeleteTechnology(c, technology.ID) })

	questionnaire := dto.Questionnaire.ToQuestionnaire()
	if ve := questionnaire.Validate(); ve != nil {
		rb.run(ctx)
		return nil, nil, ve
	}
	questionnaire.TechnologyID = &technology.ID

	if err := b.store.InsertQuestionnaire(ctx, questionnaire); err != nil {
		rb.run(ctx)
		return nil, nil, fmt.Errorf("failed to create questionnaire: %w", err)
	}
	rb.add(func(c context.Context) { b.store.DeleteQuestionnaire(c, questionnaire.ID) })

	structure, err := b.createSectionsUnder(ctx, &rb, questionnaire.ID, dto.Questionnaire.Sections)
	if err != nil {
		rb.run(ctx)
		return nil, nil, err
	}

	return technology, &models.QuestionnaireStructure{Questionnaire: questionnaire, Structure: structure}, nil
}

// CreateQuestionnaireWithExistingSections creates a questionnaire and
// populates it with copies of already existing sections. Copies carry the
// section metadata only, never the questions, so the originals stay
// reusable templates.
func (b *Builder) CreateQuestionnaireWithExistingSections(ctx context.Context, dto *models.QuestionnaireDto, sectionIDs []string) (*models.QuestionnaireStructure, error) {
	questionnaire := dto.ToQuestionnaire()
	if ve := questionnaire.Validate(); ve != nil {
		return nil, ve
	}

	sources := make([]*models.Section, 0, len(sectionIDs))
	for _, raw := range sectionIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, errors.New("invalid section ID")
		}
		section, err := b.store.FindSection(ctx, id)
		if err != nil {
			return nil, err
		}
		sources = append(sources, section)
	}

	if err := b.store.InsertQuestionnaire(ctx, questionnaire); err != nil {
		return nil, fmt.Errorf("failed to create questionnaire: %w", err)
	}

	var rb rollback
	rb.add(func(c context.Context) { b.store.DeleteQuestionnaire(c, questionnaire.ID) })

	structure := []models.SectionStructure{}
	for _, source := range sources {
		dup := source.Copy(questionnaire.ID)
		if err := b.store.InsertSection(ctx, dup); err != nil {
			rb.run(ctx)
			return nil, fmt.Errorf("failed to copy section: %w", err)
		}
		id := dup.ID
		rb.add(func(c context.Context) { b.store.DeleteSection(c, id) })
		structure = append(structure, models.SectionStructure{Section: *dup, Questions: []models.Question{}})
	}

	return &models.QuestionnaireStructure{Questionnaire: questionnaire, Structure: structure}, nil
}

// AddQuestionsToSection links existing questions to a section. Questions
// already in the section are simply re-stamped, so the call is idempotent.
func (b *Builder) AddQuestionsToSection(ctx context.Context, sectionID string, questionIDs []string) (int64, error) {
	secID, err := primitive.ObjectIDFromHex(sectionID)
	if err != nil {
		return 0, errors.New("invalid section ID")
	}
	ids, err := parseObjectIDs(questionIDs, "invalid question ID")
	if err != nil {
		return 0, err
	}

	if _, err := b.store.FindSection(ctx, secID); err != nil {
		return 0, err
	}
	return b.store.LinkQuestionsToSection(ctx, ids, secID)
}

// UnlinkQuestions detaches questions from whatever section they belong to,
// making them standalone again. Already standalone questions are ignored,
// so repeating the call changes nothing.
func (b *Builder) UnlinkQuestions(ctx context.Context, questionIDs []string) (int64, error) {
	ids, err := parseObjectIDs(questionIDs, "invalid question ID")
	if err != nil {
		return 0, err
	}
	return b.store.UnlinkQuestions(ctx, ids)
}

// AddSectionsToQuestionnaire links existing sections to a questionnaire.
// A section already owned by another questionnaire moves to this one.
func (b *Builder) AddSectionsToQuestionnaire(ctx context.Context, questionnaireID string, sectionIDs []string) (int64, error) {
	qnID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return 0, errors.New("invalid questionnaire ID")
	}
	ids, err := parseObjectIDs(sectionIDs, "invalid section ID")
	if err != nil {
		return 0, err
	}

	if _, err := b.store.FindQuestionnaire(ctx, qnID); err != nil {
		return 0, err
	}
	return b.store.LinkSectionsToQuestionnaire(ctx, ids, qnID)
}

// LinkQuestionnaireToTechnology attaches a questionnaire to a technology
// after checking both sides exist.
func (b *Builder) LinkQuestionnaireToTechnology(ctx context.Context, questionnaireID, technologyID string) error {
	qnID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return errors.New("invalid questionnaire ID")
	}
	techID, err := primitive.ObjectIDFromHex(technologyID)
	if err != nil {
		return errors.New("invalid technology ID")
	}

	if _, err := b.store.FindTechnology(ctx, techID); err != nil {
		return err
	}
	return b.store.SetQuestionnaireTechnology(ctx, qnID, techID)
}

// GetStructure assembles the full read model for a questionnaire: its
// sections in order, each with its questions in order.
func (b *Builder) GetStructure(ctx context.Context, questionnaireID string) (*models.QuestionnaireStructure, error) {
	qnID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, errors.New("invalid questionnaire ID")
	}

	questionnaire, err := b.store.FindQuestionnaire(ctx, qnID)
	if err != nil {
		return nil, err
	}

	sections, err := b.store.FindSectionsByQuestionnaire(ctx, qnID)
	if err != nil {
		return nil, err
	}

	structure := []models.SectionStructure{}
	for i := range sections {
		questions, err := b.store.FindQuestionsBySection(ctx, sections[i].ID)
		if err != nil {
			return nil, err
		}
		structure = append(structure, models.SectionStructure{Section: sections[i], Questions: questions})
	}

	return &models.QuestionnaireStructure{Questionnaire: questionnaire, Structure: structure}, nil
}

func parseObjectIDs(raw []string, invalidMsg string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, r := range raw {
		id, err := primitive.ObjectIDFromHex(r)
		if err != nil {
			return nil, errors.New(invalidMsg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
