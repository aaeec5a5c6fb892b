package domain

// DefaultCategories засеваются при первом обращении к пустой области
var DefaultCategories = []string{"Muncă", "Studii", "Relaxare"}
