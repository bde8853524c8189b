package domain

// Jurisdiction is a court district the firm practises in.
type Jurisdiction string

const (
	JurisdictionHyderabad    Jurisdiction = "Hyderabad"
	JurisdictionSecunderabad Jurisdiction = "Secunderabad"
	JurisdictionCyberabad    Jurisdiction = "Cyberabad"
	JurisdictionRangareddy   Jurisdiction = "Rangareddy"
)

// Jurisdictions lists every jurisdiction in display order.
var Jurisdictions = []Jurisdiction{
	JurisdictionHyderabad,
	JurisdictionSecunderabad,
	JurisdictionCyberabad,
	JurisdictionRangareddy,
}

func (j Jurisdiction) Valid() bool {
	for _, v := range Jurisdictions {
		if v == j {
			return true
		}
	}
	return false
}

// PracticeArea doubles as the blog category and the directory specialization.
type PracticeArea string

const (
	PracticeCorporateLaw          PracticeArea = "corporateLaw"
	PracticeCivilLitigation       PracticeArea = "civilLitigation"
	PracticeCriminalDefense       PracticeArea = "criminalDefense"
	PracticeFamilyLaw             PracticeArea = "familyLaw"
	PracticePropertyLaw           PracticeArea = "propertyLaw"
	PracticeEmploymentLaw         PracticeArea = "employmentLaw"
	PracticeTaxLaw                PracticeArea = "taxLaw"
	PracticeIPLaw                 PracticeArea = "ipLaw"
	PracticeStartupLaw            PracticeArea = "startupLaw"
	PracticeDocumentationServices PracticeArea = "documentationServices"
)

var PracticeAreas = []PracticeArea{
	PracticeCorporateLaw,
	PracticeCivilLitigation,
	PracticeCriminalDefense,
	PracticeFamilyLaw,
	PracticePropertyLaw,
	PracticeEmploymentLaw,
	PracticeTaxLaw,
	PracticeIPLaw,
	PracticeStartupLaw,
	PracticeDocumentationServices,
}

func (p PracticeArea) Valid() bool {
	for _, v := range PracticeAreas {
		if v == p {
			return true
		}
	}
	return false
}

// TrendRelevance tells whether a trending topic is of national or local interest.
type TrendRelevance string

const (
	TrendNational TrendRelevance = "national"
	TrendLocal    TrendRelevance = "local"
)

func (t TrendRelevance) Valid() bool {
	return t == TrendNational || t == TrendLocal
}
