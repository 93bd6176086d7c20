package classify

import (
	"strings"

	"github.com/hackybara/expense-tracker/constants"
)

// categoryKeywords maps each scorable category to the phrases that vote for
// it. Order matters: on a tied score the earlier category wins.
var categoryKeywords = []struct {
	category constants.Category
	phrases  []string
}{
	{
		category: constants.FoodAndBeverage,
		phrases: []string{
			// restaurants and fast food
			"kfc", "mcdonald", "burger king", "pizza hut", "domino", "subway",
			"starbucks", "coffee bean", "old town", "kopitiam", "mamak",
			"restaurant", "cafe", "bistro", "diner", "eatery", "kitchen",
			// food types
			"food", "meal", "lunch", "dinner", "breakfast", "brunch",
			"drink", "beverages", "coffee", "tea", "juice", "water",
			"beer", "wine", "alcohol", "bar", "pub", "lounge",
			// food shopping
			"grocery", "supermarket", "market", "hypermarket", "mart",
			"giant", "tesco", "aeon", "jaya grocer", "cold storage",
			"bakery", "pastry", "bread", "cake", "dessert",
			// local staples
			"nasi", "mee", "char kuey teow", "roti", "teh tarik", "kopi",
		},
	},
	{
		category: constants.Utilities,
		phrases: []string{
			// electricity
			"electric", "electricity", "power", "energy", "tnb", "tenaga",
			"electric bill", "power bill", "utility bill",
			// water
			"water", "air", "syabas", "pba", "sab", "water bill",
			// gas
			"gas", "lpg", "natural gas", "petronas gas",
			// internet and telco
			"internet", "broadband", "wifi", "telekom", "tm", "unifi",
			"maxis", "celcom", "digi", "u mobile", "yes", "time",
			"phone", "mobile", "postpaid", "prepaid", "data plan",
			// general
			"utility", "utilities", "bill", "monthly bill",
		},
	},
	{
		category: constants.Transportation,
		phrases: []string{
			// ride hailing
			"grab", "uber", "gojek", "taxi", "e-hailing",
			// public transport
			"bus", "train", "mrt", "lrt", "kl monorail", "rapidkl",
			"ktm", "ets", "klia ekspres", "public transport",
			// fuel
			"petrol", "gasoline", "diesel", "fuel", "gas station",
			"petronas", "shell", "esso", "bhp", "caltex",
			// parking and tolls
			"parking", "toll", "highway", "plus", "smart tag",
			"touch n go", "parking fee", "toll fee",
			// vehicle services
			"car wash", "service center", "workshop", "mechanic",
			"vehicle", "automotive", "motorcycle", "motor",
			// air travel
			"flight", "airline", "airport", "airasia", "mas",
			"malindo", "firefly", "aviation", "boarding",
		},
	},
	{
		category: constants.OfficeSupplies,
		phrases: []string{
			// stationery
			"office", "stationery", "stationary", "paper", "pen", "pencil",
			"marker", "highlighter", "stapler", "clip", "folder",
			"notebook", "notepad", "file", "binder", "envelope",
			// technology
			"computer", "laptop", "desktop", "monitor", "keyboard",
			"mouse", "printer", "scanner", "toner", "ink", "cartridge",
			"software", "hardware", "it equipment", "electronics",
			// furniture
			"desk", "chair", "table", "cabinet", "shelf", "furniture",
			"office furniture", "ergonomic", "workstation",
			// supplies
			"supplies", "equipment", "materials", "tools",
			// stores
			"popular bookstore", "mph", "office depot", "staples",
		},
	},
}

// KeywordGuess scores the text against every category's phrase list and
// returns the best match. Multi-word phrases count double per word; single
// words count one. A zero score everywhere means Others.
func KeywordGuess(text string) constants.Category {
	if text == "" {
		return constants.Others
	}
	lower := strings.ToLower(text)

	best := constants.Others
	bestScore := 0
	for _, ck := range categoryKeywords {
		score := 0
		for _, phrase := range ck.phrases {
			if strings.Contains(lower, phrase) {
				if words := len(strings.Fields(phrase)); words > 1 {
					score += words * 2
				} else {
					score++
				}
			}
		}
		// Strictly greater keeps the earlier category on ties.
		if score > bestScore {
			best = ck.category
			bestScore = score
		}
	}
	return best
}
