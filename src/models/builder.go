package models

// Builder DTOs: the nested payloads used by the bottom-up composition
// endpoints. Child ownership ids are filled in by the workflow, never by
// the caller.

// QuestionDto is the creation payload for a question inside a composition
// call.
type QuestionDto struct {
	Text             string `json:"text"`
	Guidance         string `json:"guidance"`
	EvidenceRequired string `json:"evidenceRequired"`
	Weight           int    `json:"weight"`
	Order            int    `json:"order"`
}

func (d *QuestionDto) ToQuestion() *Question {
	q := &Question{
		Text:             d.Text,
		Guidance:         d.Guidance,
		EvidenceRequired: d.EvidenceRequired,
		Weight:           d.Weight,
		Order:            d.Order,
	}
	q.Normalize()
	return q
}

// SectionDto is a section plus the questions to create under it.
type SectionDto struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Weight      int           `json:"weight"`
	Order       int           `json:"order"`
	Questions   []QuestionDto `json:"questions"`
}

func (d *SectionDto) ToSection() *Section {
	s := &Section{
		Title:       d.Title,
		Description: d.Description,
		Weight:      d.Weight,
		Order:       d.Order,
	}
	s.Normalize()
	return s
}

// QuestionnaireDto is a questionnaire plus the sections to create under it.
type QuestionnaireDto struct {
	Title       string       `json:"title"`
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Sections    []SectionDto `json:"sections"`
}

func (d *QuestionnaireDto) ToQuestionnaire() *Questionnaire {
	qn := &Questionnaire{
		Title:       d.Title,
		Version:     d.Version,
		Description: d.Description,
	}
	qn.Normalize()
	return qn
}

// TechnologyDto is a technology plus the questionnaire tree to create
// under it.
type TechnologyDto struct {
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Vendor        string            `json:"vendor"`
	Category      string            `json:"category"`
	RiskLevel     string            `json:"riskLevel"`
	Description   string            `json:"description"`
	Questionnaire *QuestionnaireDto `json:"questionnaire"`
}

func (d *TechnologyDto) ToTechnology() *Technology {
	t := &Technology{
		Name:        d.Name,
		Version:     d.Version,
		Vendor:      d.Vendor,
		Category:    d.Category,
		RiskLevel:   d.RiskLevel,
		Description: d.Description,
	}
	t.Normalize()
	return t
}
