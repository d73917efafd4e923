package board

// Prize is one tier of the weekly payout table.
type Prize struct {
	Place  string
	Reward string
}

// Prizes returns the weekly prize tiers in display order. The tiers are
// fixed for the season; only the leaderboard around them moves.
func Prizes() []Prize {
	return []Prize{
		{Place: "1st", Reward: "$1,000"},
		{Place: "2nd", Reward: "$500"},
		{Place: "3rd", Reward: "$250"},
		{Place: "4th-5th", Reward: "$100"},
		{Place: "6th-10th", Reward: "$50"},
	}
}
