package semantic

import "strings"

// nameRule binds a semantic type to the name keywords that suggest it.
type nameRule struct {
	Type     Type
	Keywords []string
}

// nameRules is an ordered priority list, not a set: the first group with a
// matching keyword wins, so co-occurring keywords resolve deterministically
// (e.g. "date_montant" is numeric via "montant", not a date). The order is
// fixed: numeric, date, boolean, categorical, identifier.
var nameRules = []nameRule{
	{Numeric, []string{
		"age", "montant", "prix", "price", "total", "score",
		"quantite", "quantity", "nombre", "amount", "cout", "cost",
		"valeur", "value", "taux", "rate",
	}},
	{Date, []string{
		"date", "dt", "naissance", "birth", "created", "updated",
		"modified", "expiration", "debut", "fin", "start", "end",
	}},
	{Boolean, []string{
		"is_", "has_", "flag", "actif", "active", "enabled",
		"valide", "valid", "confirm",
	}},
	{Categorical, []string{
		"type", "statut", "status", "niveau", "level", "category",
		"categorie", "classe", "class", "genre", "sexe", "gender",
	}},
	{Identifier, []string{
		"id", "code", "ref", "reference", "key", "uuid",
	}},
}

// InferExpected maps a column name to its expected semantic type. It is a
// pure total function: names matching no rule default to Text.
func InferExpected(columnName string) Type {
	name := strings.ToLower(columnName)
	for _, rule := range nameRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return rule.Type
			}
		}
	}
	return Text
}
