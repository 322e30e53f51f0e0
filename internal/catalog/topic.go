package catalog

// Topic is a subject area grouping games.
type Topic string

const (
	TopicCivics           Topic = "civics"
	TopicEntrepreneurship Topic = "entrepreneurship"
	TopicHealth           Topic = "health"
	TopicSustainability   Topic = "sustainability"
)

// AllTopics returns all topics in display order.
func AllTopics() []Topic {
	return []Topic{
		TopicCivics,
		TopicEntrepreneurship,
		TopicHealth,
		TopicSustainability,
	}
}

// DisplayName returns a human-readable name for a topic.
func (t Topic) DisplayName() string {
	switch t {
	case TopicCivics:
		return "Civic Responsibility"
	case TopicEntrepreneurship:
		return "Young Entrepreneurs"
	case TopicHealth:
		return "Health & Wellbeing"
	case TopicSustainability:
		return "Green Planet"
	default:
		return string(t)
	}
}

// Icon returns the display icon for a topic.
func (t Topic) Icon() string {
	switch t {
	case TopicCivics:
		return "🏛️"
	case TopicEntrepreneurship:
		return "💡"
	case TopicHealth:
		return "🍎"
	case TopicSustainability:
		return "🌱"
	default:
		return "•"
	}
}

func knownTopic(s string) bool {
	for _, t := range AllTopics() {
		if string(t) == s {
			return true
		}
	}
	return false
}
