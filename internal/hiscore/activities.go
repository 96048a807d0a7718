package hiscore

// activityNames lists the hiscore rows that follow the skills, in response
// order. Rows past the end of the list belong to activities added since and
// are skipped.
var activityNames = []string{
	"League Points",
	"Bounty Hunter - Hunter",
	"Bounty Hunter - Rogue",
	"Clue Scrolls (all)",
	"Clue Scrolls (beginner)",
	"Clue Scrolls (easy)",
	"Clue Scrolls (medium)",
	"Clue Scrolls (hard)",
	"Clue Scrolls (elite)",
	"Clue Scrolls (master)",
	"LMS - Rank",
	"Soul Wars Zeal",
	"Abyssal Sire",
	"Alchemical Hydra",
	"Barrows Chests",
	"Bryophyta",
	"Callisto",
	"Cerberus",
	"Chambers of Xeric",
	"Chambers of Xeric: Challenge Mode",
	"Chaos Elemental",
	"Chaos Fanatic",
	"Commander Zilyana",
	"Corporeal Beast",
	"Dagannoth Prime",
	"Dagannoth Rex",
	"Dagannoth Supreme",
	"Crazy Archaeologist",
	"Deranged Archaeologist",
	"General Graardor",
	"Giant Mole",
	"Grotesque Guardians",
	"Hespori",
	"Kalphite Queen",
	"King Black Dragon",
	"Kraken",
	"Kree'Arra",
	"K'ril Tsutsaroth",
	"Mimic",
	"Nightmare",
	"Phosani's Nightmare",
	"Obor",
	"Sarachnis",
	"Scorpia",
	"Skotizo",
	"Tempoross",
	"The Gauntlet",
	"The Corrupted Gauntlet",
	"Theatre of Blood",
	"Theatre of Blood: Hard Mode",
	"Thermonuclear Smoke Devil",
	"TzKal-Zuk",
	"TzTok-Jad",
	"Venenatis",
	"Vet'ion",
	"Vorkath",
	"Wintertodt",
	"Zalcano",
	"Zulrah",
}
