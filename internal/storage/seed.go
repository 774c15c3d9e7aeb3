package storage

import "marketcrown/backend-go/internal/models"

// SeedData is the starter set written into an empty store.
type SeedData struct {
	Indices []models.MarketIndex
	Crypto  []models.CryptoPrice
	News    []models.MarketNews
	Blogs   []models.Blog
}

func Seed(today string) SeedData {
	return SeedData{
		Indices: []models.MarketIndex{
			{Region: models.RegionUSA, Name: "S&P 500", Value: "4,783.45", Change: "+23.12", ChangePercent: "+0.48%"},
			{Region: models.RegionUSA, Name: "NASDAQ", Value: "15,678.90", Change: "+145.32", ChangePercent: "+0.93%"},
			{Region: models.RegionUSA, Name: "DOW JONES", Value: "37,890.12", Change: "-45.67", ChangePercent: "-0.12%"},
			{Region: models.RegionIndia, Name: "NIFTY 50", Value: "21,456.70", Change: "+123.45", ChangePercent: "+0.58%"},
			{Region: models.RegionIndia, Name: "SENSEX", Value: "71,234.56", Change: "+345.67", ChangePercent: "+0.49%"},
			{Region: models.RegionJapan, Name: "NIKKEI 225", Value: "33,456.78", Change: "+567.89", ChangePercent: "+1.73%"},
		},
		Crypto: []models.CryptoPrice{
			{Symbol: "BTC", Name: "Bitcoin", Price: "$43,567.89", Change24h: "+2.34%"},
			{Symbol: "ETH", Name: "Ethereum", Price: "$2,345.67", Change24h: "+1.56%"},
			{Symbol: "SOL", Name: "Solana", Price: "$98.76", Change24h: "+5.67%"},
		},
		News: []models.MarketNews{
			{Region: models.RegionGlobal, Date: today, Type: "briefing", Sentiment: "bullish",
				Title:   "The Crown Jewel of Markets: Global Liquidity Surges",
				Content: "Global markets rallied as central banks signalled a possible shift in monetary policy. The Kingdom of Commerce rejoices."},
			{Region: models.RegionUSA, Date: today, Type: "news", Sentiment: "bullish",
				Title:   "Tech Titans Fortify Their Strongholds",
				Content: "Silicon Valley giants continue their upward march, with AI developments leading the charge."},
			{Region: models.RegionIndia, Date: today, Type: "news", Sentiment: "bullish",
				Title:   "The Eastern Tiger Roars",
				Content: "India's infrastructure spending hits new highs. Investors flock to the subcontinent seeking royal returns."},
			{Region: models.RegionJapan, Date: today, Type: "news", Sentiment: "neutral",
				Title:   "Sunrise Over Tokyo: Tech Sector Rebounds",
				Content: "Japanese tech stocks woke up on export demand and a currency move that favours the Emperor's merchants."},
			{Region: models.RegionCrypto, Date: today, Type: "news", Sentiment: "bullish",
				Title:   "Digital Gold Shines Brighter",
				Content: "Bitcoin reclaims key territory as institutional interest grows and new protocols emerge from the shadows."},
		},
		Blogs: []models.Blog{
			{Country: models.RegionUSA, Date: today, Author: "Chief Market Analyst",
				Title:   "Wall Street's Golden Hour: Tech Stocks Surge",
				Excerpt: "An analysis of today's moves across the technology sector.",
				Content: "American markets showed resilience as technology stocks extended their run. Today's session saw gains across the major indices."},
			{Country: models.RegionIndia, Date: today, Author: "Senior Investment Strategist",
				Title:   "The Eastern Tiger Roars: NSE Reaches New Heights",
				Excerpt: "Indian markets break records as growth accelerates.",
				Content: "NIFTY and SENSEX both closed with strong bullish momentum, reflecting the country's robust growth."},
			{Country: models.RegionJapan, Date: today, Author: "Asia-Pacific Market Specialist",
				Title:   "Tokyo's Rising Sun: Nikkei Index Breaks Records",
				Excerpt: "Japanese markets experience a historic rally.",
				Content: "International investors returned to the Tokyo exchange and the Nikkei reached new highs."},
			{Country: models.RegionCrypto, Date: today, Author: "Blockchain Analyst",
				Title:   "Digital Gold Shines: Bitcoin Reaches New Milestone",
				Excerpt: "Crypto markets surge as institutional adoption accelerates.",
				Content: "Bitcoin posted a significant gain today on strong institutional demand."},
		},
	}
}
