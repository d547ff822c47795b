package domain

import "github.com/shopspring/decimal"

// SeedCatalog returns the formations a fresh installation starts with.
func SeedCatalog() []*Formation {
	return []*Formation{
		seed("Développement Web", "Apprenez HTML, CSS, JavaScript et React", "3 mois", "299.99", "Débutant", "Web", "/images/web-dev.jpg"),
		seed("Bases de données", "Maîtrisez SQL et PostgreSQL", "2 mois", "199.99", "Intermédiaire", "Data", "/images/database.jpg"),
		seed("JavaScript Avancé", "Concepts avancés de JavaScript", "4 mois", "399.99", "Avancé", "Web", "/images/js-advanced.jpg"),
		seed("React & Node.js", "Stack complète moderne", "6 mois", "599.99", "Intermédiaire", "Web", "/images/react-node.jpg"),
	}
}

func seed(title, description, duration, price, level, category, image string) *Formation {
	return &Formation{
		Title:       title,
		Description: description,
		Duration:    duration,
		Price:       decimal.NewNullDecimal(decimal.RequireFromString(price)),
		Level:       level,
		Category:    category,
		Status:      StatusPublished,
		Image:       image,
	}
}
