package whatif

// Static narrative content: curated scenarios, educational stories, daily
// tips and leaderboard seed data. Like the asset catalog, these are defined
// at process start and never mutated.

// Scenario is a canned "what if" with its narrative framing.
type Scenario struct {
	ID          string
	Title       string
	Description string
	AssetID     string
	Amount      Money
	BuyDate     Date
	SellDate    Date
	Story       string
	Tags        []string
}

// Run replays the scenario through the real pipeline.
func (s Scenario) Run(r *Resolver) (*CalculationResult, error) {
	return Calculate(r, s.AssetID, SingleSchedule{Amount: s.Amount, Date: s.BuyDate}, s.BuyDate, s.SellDate)
}

// CuratedScenarios are the canned scenarios, in display order.
var CuratedScenarios = []Scenario{
	{
		ID:          "bitcoin-2011",
		Title:       "$100 in Bitcoin (2011)",
		Description: `When Bitcoin was just $1 and most people called it "magic internet money"`,
		AssetID:     "bitcoin",
		Amount:      USD(100),
		BuyDate:     NewDate(2011, 2, 1),
		SellDate:    NewDate(2021, 11, 1),
		Story:       "In February 2011, Bitcoin reached parity with the US dollar for the first time. A $100 investment would have bought you 100 BTC. At its peak in November 2021, that would have been worth over $6.7 million.",
		Tags:        []string{"legendary", "crypto", "early-adopter"},
	},
	{
		ID:          "tesla-ipo",
		Title:       "$1,000 in Tesla at IPO",
		Description: "Betting on Elon Musk when Tesla was just a startup dream",
		AssetID:     "tesla",
		Amount:      USD(1000),
		BuyDate:     NewDate(2010, 6, 29),
		SellDate:    NewDate(2024, 1, 1),
		Story:       "Tesla went public at $17 per share in June 2010. Many doubted electric vehicles would ever go mainstream. A $1,000 investment would have bought about 59 shares, worth over $14,000 today after multiple stock splits.",
		Tags:        []string{"ipo", "electric", "visionary"},
	},
	{
		ID:          "nvidia-ai-boom",
		Title:       "$500 in NVIDIA (Pre-AI)",
		Description: "Graphics cards to AI goldmine transformation",
		AssetID:     "nvidia",
		Amount:      USD(500),
		BuyDate:     NewDate(2019, 1, 1),
		SellDate:    NewDate(2024, 1, 1),
		Story:       "Before the AI boom, NVIDIA was known for gaming graphics cards. The AI revolution transformed the company into one of the most valuable in the world. A $500 investment in early 2019 would be worth over $3,000 today.",
		Tags:        []string{"ai-revolution", "technology", "transformation"},
	},
	{
		ID:          "amazon-dot-com",
		Title:       "$1,000 in Amazon (1997)",
		Description: "When it was just an online bookstore",
		AssetID:     "amazon",
		Amount:      USD(1000),
		BuyDate:     NewDate(1997, 5, 15),
		SellDate:    NewDate(2024, 1, 1),
		Story:       `Amazon IPO'd in 1997 at $18 per share as an online bookstore. Jeff Bezos had a vision of "everything store." A $1,000 investment would have bought about 55 shares, worth over $180,000 today after stock splits.`,
		Tags:        []string{"dot-com", "e-commerce", "visionary"},
	},
	{
		ID:          "bitcoin-pizza",
		Title:       "$22 Pizza Bitcoin Purchase",
		Description: "The most expensive pizza in history",
		AssetID:     "bitcoin",
		Amount:      USD(22),
		BuyDate:     NewDate(2010, 5, 22),
		SellDate:    NewDate(2021, 11, 1),
		Story:       "On May 22, 2010, Laszlo Hanyecz paid 10,000 BTC for two pizzas worth $22. If he had held those bitcoins instead, they would have been worth over $670 million at Bitcoin's peak.",
		Tags:        []string{"pizza-day", "crypto", "legendary"},
	},
	{
		ID:          "dogecoin-meme",
		Title:       "$100 in Dogecoin (2013)",
		Description: "The joke that became a fortune",
		AssetID:     "dogecoin",
		Amount:      USD(100),
		BuyDate:     NewDate(2013, 12, 1),
		SellDate:    NewDate(2021, 5, 1),
		Story:       "Dogecoin started as a meme in 2013, trading for fractions of a cent. A $100 investment would have bought millions of coins. During the 2021 meme stock craze, it peaked at over $0.70, turning $100 into tens of thousands.",
		Tags:        []string{"meme", "crypto", "viral"},
	},
}

// Story is an educational anecdote about an iconic investment.
type Story struct {
	ID       string
	Title    string
	Content  string
	Category string
	Lesson   string
}

var InvestmentStories = []Story{
	{
		ID:       "warren-buffett-coca-cola",
		Title:    "Warren Buffett's Coca-Cola Investment",
		Content:  `In 1988, Warren Buffett invested $1.3 billion in Coca-Cola stock. Many criticized him for buying a "simple" beverage company. Today, that investment is worth over $25 billion and generates $704 million in annual dividends.`,
		Category: "legendary",
		Lesson:   "Sometimes the best investments are in simple businesses you understand.",
	},
	{
		ID:       "bitcoin-forgotten-wallet",
		Title:    "The $300 Million Lost Password",
		Content:  "Stefan Thomas, a German programmer, has 7,002 bitcoins locked in a hard drive. He forgot his password and has only 2 attempts left before the drive encrypts forever. At Bitcoin's peak, this was worth over $300 million.",
		Category: "cautionary",
		Lesson:   "Always secure your investments properly and have backup plans.",
	},
	{
		ID:       "google-rejection",
		Title:    "The $1.6 Trillion Rejection",
		Content:  "In 2002, Google founders tried to sell their company to Yahoo for $1 billion. Yahoo declined, thinking it was too expensive. Google is now worth over $1.6 trillion.",
		Category: "missed-opportunity",
		Lesson:   "Innovation often seems overpriced until it becomes indispensable.",
	},
}

// Tip is a short piece of financial education.
type Tip struct {
	ID       string
	Title    string
	Content  string
	Category string
}

var DailyTips = []Tip{
	{
		ID:       "compound-interest",
		Title:    "The Magic of Compound Interest",
		Content:  `Albert Einstein allegedly called compound interest "the eighth wonder of the world." A $1,000 investment growing at 7% annually becomes $76,000 in 60 years without adding a penny.`,
		Category: "education",
	},
	{
		ID:       "dollar-cost-averaging",
		Title:    "Dollar-Cost Averaging",
		Content:  "Instead of trying to time the market, invest the same amount regularly. This strategy reduces the impact of volatility and can lead to better long-term returns.",
		Category: "strategy",
	},
	{
		ID:       "diversification",
		Title:    "Don't Put All Eggs in One Basket",
		Content:  "Diversification is the only free lunch in investing. Spreading investments across different assets reduces risk without necessarily reducing returns.",
		Category: "risk-management",
	},
	{
		ID:       "inflation-reality",
		Title:    "The Silent Wealth Killer",
		Content:  "Inflation averages 3% annually. This means $100 today will only buy $97 worth of goods next year. Investing is essential to preserve purchasing power.",
		Category: "education",
	},
}

// LeaderboardEntry is one row of the seeded "best performers" board: what a
// $1,000 investment over the period would have returned.
type LeaderboardEntry struct {
	AssetID string
	Symbol  string
	Return  Percent
	Amount  Money
	Value   Money
}

// Leaderboards holds seed rows per horizon ("1year", "5years", "10years").
var Leaderboards = map[string][]LeaderboardEntry{
	"1year": {
		{AssetID: "nvidia", Symbol: "NVDA", Return: 245.6, Amount: USD(1000), Value: USD(3456)},
		{AssetID: "bitcoin", Symbol: "BTC", Return: 156.8, Amount: USD(1000), Value: USD(2568)},
		{AssetID: "tesla", Symbol: "TSLA", Return: 98.4, Amount: USD(1000), Value: USD(1984)},
		{AssetID: "ethereum", Symbol: "ETH", Return: 87.2, Amount: USD(1000), Value: USD(1872)},
		{AssetID: "amazon", Symbol: "AMZN", Return: 34.5, Amount: USD(1000), Value: USD(1345)},
	},
	"5years": {
		{AssetID: "bitcoin", Symbol: "BTC", Return: 892.3, Amount: USD(1000), Value: USD(9923)},
		{AssetID: "nvidia", Symbol: "NVDA", Return: 678.9, Amount: USD(1000), Value: USD(7789)},
		{AssetID: "tesla", Symbol: "TSLA", Return: 456.7, Amount: USD(1000), Value: USD(5567)},
		{AssetID: "ethereum", Symbol: "ETH", Return: 345.2, Amount: USD(1000), Value: USD(4452)},
		{AssetID: "netflix", Symbol: "NFLX", Return: 234.1, Amount: USD(1000), Value: USD(3341)},
	},
	"10years": {
		{AssetID: "bitcoin", Symbol: "BTC", Return: 15678.9, Amount: USD(1000), Value: USD(167789)},
		{AssetID: "nvidia", Symbol: "NVDA", Return: 2345.6, Amount: USD(1000), Value: USD(34456)},
		{AssetID: "tesla", Symbol: "TSLA", Return: 1234.5, Amount: USD(1000), Value: USD(23345)},
		{AssetID: "netflix", Symbol: "NFLX", Return: 567.8, Amount: USD(1000), Value: USD(6678)},
		{AssetID: "apple", Symbol: "AAPL", Return: 345.2, Amount: USD(1000), Value: USD(4452)},
	},
}
