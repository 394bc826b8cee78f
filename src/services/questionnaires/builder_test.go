package questionnaires

import (
	"context"
	"errors"
	"testing"

	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore keeps everything in maps so the workflow can be exercised
// without a database. failQuestionText makes InsertQuestion fail for a
// specific question, simulating a mid-stream write error.
type fakeStore struct {
	questions        map[primitive.ObjectID]*models.Question
	sections         map[primitive.ObjectID]*models.Section
	questionnaires   map[primitive.ObjectID]*models.Questionnaire
	technologies     map[primitive.ObjectID]*models.Technology
	failQuestionText string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		questions:      map[primitive.ObjectID]*models.Question{},
		sections:       map[primitive.ObjectID]*models.Section{},
		questionnaires: map[primitive.ObjectID]*models.Questionnaire{},
		technologies:   map[primitive.ObjectID]*models.Technology{},
	}
}

func (f *fakeStore) InsertQuestion(_ context.Context, q *models.Question) error {
	if f.failQuestionText != "" && q.Text == f.failQuestionText {
		return errors.New("write failed")
	}
	q.ID = primitive.NewObjectID()
	f.questions[q.ID] = q
	return nil
}

func (f *fakeStore) InsertSection(_ context.Context, s *models.Section) error {
	s.ID = primitive.NewObjectID()
	f.sections[s.ID] = s
	return nil
}

func (f *fakeStore) InsertQuestionnaire(_ context.Context, qn *models.Questionnaire) error {
	qn.ID = primitive.NewObjectID()
	f.questionnaires[qn.ID] = qn
	return nil
}

func (f *fakeStore) InsertTechnology(_ context.Context, t *models.Technology) error {
	t.ID = primitive.NewObjectID()
	f.technologies[t.ID] = t
	return nil
}

func (f *fakeStore) DeleteQuestion(_ context.Context, id primitive.ObjectID) error {
	delete(f.questions, id)
	return nil
}

func (f *fakeStore) DeleteSection(_ context.Context, id primitive.ObjectID) error {
	delete(f.sections, id)
	return nil
}

func (f *fakeStore) DeleteQuestionnaire(_ context.Context, id primitive.ObjectID) error {
	delete(f.questionnaires, id)
	return nil
}

func (f *fakeStore) DeleteTechnology(_ context.Context, id primitive.ObjectID) error {
	delete(f.technologies, id)
	return nil
}

func (f *fakeStore) FindSection(_ context.Context, id primitive.ObjectID) (*models.Section, error) {
	if s, ok := f.sections[id]; ok {
		return s, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeStore) FindQuestionnaire(_ context.Context, id primitive.ObjectID) (*models.Questionnaire, error) {
	if qn, ok := f.questionnaires[id]; ok {
		return qn, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeStore) FindTechnology(_ context.Context, id primitive.ObjectID) (*models.Technology, error) {
	if t, ok := f.technologies[id]; ok {
		return t, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeStore) FindSectionsByQuestionnaire(_ context.Context, questionnaireID primitive.ObjectID) ([]models.Section, error) {
	out := []models.Section{}
	for _, s := range f.sections {
		if s.QuestionnaireID != nil && *s.QuestionnaireID == questionnaireID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStore) FindQuestionsBySection(_ context.Context, sectionID primitive.ObjectID) ([]models.Question, error) {
	out := []models.Question{}
	for _, q := range f.questions {
		if q.SectionID != nil && *q.SectionID == sectionID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeStore) LinkQuestionsToSection(_ context.Context, questionIDs []primitive.ObjectID, sectionID primitive.ObjectID) (int64, error) {
	var count int64
	for _, id := range questionIDs {
		if q, ok := f.questions[id]; ok {
			if q.SectionID == nil || *q.SectionID != sectionID {
				count++
			}
			sid := sectionID
			q.SectionID = &sid
		}
	}
	return count, nil
}

func (f *fakeStore) UnlinkQuestions(_ context.Context, questionIDs []primitive.ObjectID) (int64, error) {
	var count int64
	for _, id := range questionIDs {
		if q, ok := f.questions[id]; ok && q.SectionID != nil {
			q.SectionID = nil
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) LinkSectionsToQuestionnaire(_ context.Context, sectionIDs []primitive.ObjectID, questionnaireID primitive.ObjectID) (int64, error) {
	var count int64
	for _, id := range sectionIDs {
		if s, ok := f.sections[id]; ok {
			qid := questionnaireID
			s.QuestionnaireID = &qid
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) SetQuestionnaireTechnology(_ context.Context, questionnaireID, technologyID primitive.ObjectID) error {
	qn, ok := f.questionnaires[questionnaireID]
	if !ok {
		return utils.ErrNotFound
	}
	tid := technologyID
	qn.TechnologyID = &tid
	return nil
}

func oracleQuestionnaireDto() *models.QuestionnaireDto {
	return &models.QuestionnaireDto{
		Title:   "Oracle Database Security Audit",
		Version: "2.1",
		Sections: []models.SectionDto{
			{
				Title:  "Access Control",
				Weight: 8,
				Order:  1,
				Questions: []models.QuestionDto{
					{Text: "Are default accounts locked?", EvidenceRequired: models.EvidenceYes, Weight: 5, Order: 1},
					{Text: "Is least privilege enforced for schemas?", EvidenceRequired: models.EvidenceOptional, Weight: 3, Order: 2},
				},
			},
			{
				Title:  "Patching",
				Weight: 6,
				Order:  2,
				Questions: []models.QuestionDto{
					{Text: "Is the quarterly CPU applied?", EvidenceRequired: models.EvidenceYes, Weight: 4, Order: 1},
				},
			},
		},
	}
}

func TestCreateQuestionnaireWithSections(t *testing.T) {
	t.Run("creates the whole tree with ownership links", func(t *testing.T) {
		store := newFakeStore()
		builder := NewBuilder(store)

		structure, err := builder.CreateQuestionnaireWithSections(context.Background(), oracleQuestionnaireDto())
		require.NoError(t, err)

		assert.Len(t, store.questionnaires, 1)
		assert.Len(t, store.sections, 2)
		assert.Len(t, store.questions, 3)
		assert.Equal(t, 3, structure.TotalQuestions())
		assert.Equal(t, 6, structure.MaxPossibleScore())

		for _, ss := range structure.Structure {
			require.NotNil(t, ss.Section.QuestionnaireID)
			assert.Equal(t, structure.Questionnaire.ID, *ss.Section.QuestionnaireID)
			for _, q := range ss.Questions {
				require.NotNil(t, q.SectionID)
				assert.Equal(t, ss.Section.ID, *q.SectionID)
			}
		}
	})

	t.Run("invalid section mid-stream rolls everything back", func(t *testing.T) {
		store := newFakeStore()
		builder := NewBuilder(store)

		dto := oracleQuestionnaireDto()
		dto.Sections[1].Title = ""

		_, err := builder.CreateQuestionnaireWithSections(context.Background(), dto)
		require.Error(t, err)

		var ve models.ValidationErrors
		assert.ErrorAs(t, err, &ve)
		assert.Empty(t, store.questionnaires)
		assert.Empty(t, store.sections)
		assert.Empty(t, store.questions)
	})

	t.Run("question write failure mid-stream rolls everything back", func(t *testing.T) {
		store := newFakeStore()
		store.failQuestionText = "Is the quarterly CPU applied?"
		builder := NewBuilder(store)

		_, err := builder.CreateQuestionnaireWithSections(context.Background(), oracleQuestionnaireDto())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create question")
		assert.Empty(t, store.questionnaires)
		assert.Empty(t, store.sections)
		assert.Empty(t, store.questions)
	})
}

func TestCreateSectionWithQuestions(t *testing.T) {
	store := newFakeStore()
	builder := NewBuilder(store)

	dto := &models.SectionDto{
		Title:  "Backup and Recovery",
		Weight: 7,
		Questions: []models.QuestionDto{
			{Text: "Are backups tested quarterly?", EvidenceRequired: models.EvidenceYes},
		},
	}

	structure, err := builder.CreateSectionWithQuestions(context.Background(), dto)
	require.NoError(t, err)
	assert.Nil(t, structure.Section.QuestionnaireID)
	require.Len(t, structure.Questions, 1)
	assert.Equal(t, structure.Section.ID, *structure.Questions[0].SectionID)
}

func TestCreateQuestionnaireWithExistingSections(t *testing.T) {
	store := newFakeStore()
	builder := NewBuilder(store)

	original, err := builder.CreateSectionWithQuestions(context.Background(), &models.SectionDto{
		Title:  "Network Security",
		Weight: 9,
		Order:  3,
		Questions: []models.QuestionDto{
			{Text: "Is TLS enforced for listeners?", EvidenceRequired: models.EvidenceYes},
		},
	})
	require.NoError(t, err)

	structure, err := builder.CreateQuestionnaireWithExistingSections(
		context.Background(),
		&models.QuestionnaireDto{Title: "PostgreSQL Audit", Version: "1.0"},
		[]string{original.Section.ID.Hex()},
	)
	require.NoError(t, err)
	require.Len(t, structure.Structure, 1)

	copied := structure.Structure[0].Section
	assert.NotEqual(t, original.Section.ID, copied.ID)
	assert.Equal(t, "Network Security", copied.Title)
	assert.Equal(t, 9, copied.Weight)
	assert.Equal(t, 3, copied.Order)
	assert.Equal(t, structure.Questionnaire.ID, *copied.QuestionnaireID)

	// copies are templates: the original's questions are not carried over
	assert.Empty(t, structure.Structure[0].Questions)
	copiedQuestions, err := store.FindQuestionsBySection(context.Background(), copied.ID)
	require.NoError(t, err)
	assert.Empty(t, copiedQuestions)

	// the original section and its question are untouched
	assert.Nil(t, store.sections[original.Section.ID].QuestionnaireID)
	assert.Len(t, store.questions, 1)
}

func TestCreateQuestionnaireWithExistingSectionsMissingSource(t *testing.T) {
	store := newFakeStore()
	builder := NewBuilder(store)

	_, err := builder.CreateQuestionnaireWithExistingSections(
		context.Background(),
		&models.QuestionnaireDto{Title: "Empty", Version: "1.0"},
		[]string{primitive.NewObjectID().Hex()},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Empty(t, store.questionnaires)
}

func TestCreateTechnologyWithQuestionnaire(t *testing.T) {
	store := newFakeStore()
	builder := NewBuilder(store)

	dto := &models.TechnologyDto{
		Name:          "Oracle Database",
		Version:       "19c",
		Category:      "database",
		RiskLevel:     models.RiskHigh,
		Questionnaire: oracleQuestionnaireDto(),
	}

	technology, structure, err := builder.CreateTechnologyWithQuestionnaire(context.Background(), dto)
	require.NoError(t, err)
	require.NotNil(t, structure)
	require.NotNil(t, structure.Questionnaire.TechnologyID)
	assert.Equal(t, technology.ID, *structure.Questionnaire.TechnologyID)
	assert.Len(t, store.technologies, 1)
	assert.Len(t, store.questions, 3)
}

func TestAddAndUnlinkQuestions(t *testing.T) {
	store := newFakeStore()
	builder := NewBuilder(store)
	ctx := context.Background()

	section, err := builder.CreateSectionWithQuestions(ctx, &models.SectionDto{Title: "Hardening", Weight: 5})
	require.NoError(t, err)

	q1, err := builder.CreateQuestion(ctx, &models.QuestionDto{Text: "Is auditing enabled?", EvidenceRequired: models.EvidenceNo})
	require.NoError(t, err)
	q2, err := builder.CreateQuestion(ctx, &models.QuestionDto{Text: "Are passwords rotated?", EvidenceRequired: models.EvidenceNo})
	require.NoError(t, err)

	ids := []string{q1.ID.Hex(), q2.ID.Hex()}

	count, err := builder.AddQuestionsToSection(ctx, section.Section.ID.Hex(), ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// already linked: nothing changes
	count, err = builder.AddQuestionsToSection(ctx, section.Section.ID.Hex(), ids)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = builder.UnlinkQuestions(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// already standalone: nothing changes
	count, err = builder.UnlinkQuestions(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAddQuestionsToMissingSection(t *testing.T) {
	builder := NewBuilder(newFakeStore())

	_, err := builder.AddQuestionsToSection(context.Background(), primitive.NewObjectID().Hex(), []string{primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestLinkQuestionnaireToTechnology(t *testing.T) {
	store := newFakeStore()
	builder := NewBuilder(store)
	ctx := context.Background()

	technology, _, err := builder.CreateTechnologyWithQuestionnaire(ctx, &models.TechnologyDto{
		Name: "nginx", Version: "1.25", Category: "web-server",
	})
	require.NoError(t, err)

	structure, err := builder.CreateQuestionnaireWithSections(ctx, &models.QuestionnaireDto{Title: "Web Server Audit", Version: "1.0"})
	require.NoError(t, err)

	err = builder.LinkQuestionnaireToTechnology(ctx, structure.Questionnaire.ID.Hex(), technology.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, technology.ID, *store.questionnaires[structure.Questionnaire.ID].TechnologyID)

	err = builder.LinkQuestionnaireToTechnology(ctx, structure.Questionnaire.ID.Hex(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetStructure(t *testing.T) {
	store := newFakeStore()
	builder := NewBuilder(store)
	ctx := context.Background()

	created, err := builder.CreateQuestionnaireWithSections(ctx, oracleQuestionnaireDto())
	require.NoError(t, err)

	structure, err := builder.GetStructure(ctx, created.Questionnaire.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.Questionnaire.ID, structure.Questionnaire.ID)
	assert.Len(t, structure.Structure, 2)
	assert.Equal(t, 3, structure.TotalQuestions())

	_, err = builder.GetStructure(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = builder.GetStructure(ctx, "not-a-hex-id")
	assert.Error(t, err)
}
