package constants

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// ExperienceLevel is a benefactor's self-reported volunteering experience.
type ExperienceLevel int

const (
	ExperienceBeginner     ExperienceLevel = 0
	ExperienceIntermediate ExperienceLevel = 1
	ExperienceExpert       ExperienceLevel = 2
)
