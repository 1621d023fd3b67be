package repository

import (
	"github.com/fanadium/backend/internal/model"
	"github.com/sirupsen/logrus"
)

// Default catalog loaded into an empty store. These are the sample events
// and submissions the product ships with; ids are fixed so collaborators
// can link to them.
var defaultEvents = []model.Event{
	{
		ID:                   1,
		Title:                "Champions League Final",
		Date:                 "2026-06-01",
		Time:                 "20:00 UTC",
		Location:             "Parc des Princes, Paris",
		Sport:                "Football",
		Image:                "/football.png?height=200&width=300",
		TicketsAvailable:     1250,
		TicketPrice:          "0.5 CHZ",
		WorkshopActive:       true,
		WorkshopParticipants: 234,
		Description:          "The biggest football event of the year featuring the top European clubs.",
	},
	{
		ID:                   2,
		Title:                "World Esports Championship",
		Date:                 "2025-05-15",
		Time:                 "18:00 UTC",
		Location:             "Seoul Arena, South Korea",
		Sport:                "Esports",
		Image:                "/placeholder.png",
		TicketsAvailable:     500,
		TicketPrice:          "0.3 CHZ",
		WorkshopActive:       true,
		WorkshopParticipants: 456,
		Description:          "Top esports teams compete for the ultimate championship title.",
	},
	{
		ID:                   3,
		Title:                "NBA Finals Game 7",
		Date:                 "2025-06-20",
		Time:                 "21:00 UTC",
		Location:             "Madison Square Garden, NYC",
		Sport:                "Basketball",
		Image:                "/placeholder.png",
		TicketsAvailable:     800,
		TicketPrice:          "0.8 CHZ",
		WorkshopActive:       false,
		WorkshopParticipants: 0,
		Description:          "The decisive game that will crown the NBA champions.",
	},
	{
		ID:                   4,
		Title:                "Formula 1 Monaco Grand Prix",
		Date:                 "2025-05-26",
		Time:                 "14:00 UTC",
		Location:             "Circuit de Monaco",
		Sport:                "Racing",
		Image:                "/f1grandprix.png?height=200&width=300",
		TicketsAvailable:     300,
		TicketPrice:          "1.2 CHZ",
		WorkshopActive:       true,
		WorkshopParticipants: 189,
		Description:          "The most prestigious race in the Formula 1 calendar.",
	},
	{
		ID:                   5,
		Title:                "Tennis Wimbledon Final",
		Date:                 "2025-07-14",
		Time:                 "15:00 UTC",
		Location:             "All England Club, London",
		Sport:                "Tennis",
		Image:                "/tennis.png?height=200&width=300",
		TicketsAvailable:     600,
		TicketPrice:          "0.6 CHZ",
		WorkshopActive:       true,
		WorkshopParticipants: 312,
		Description:          "The most prestigious tennis tournament final.",
	},
	{
		ID:                   6,
		Title:                "Olympic Games Opening",
		Date:                 "2025-07-26",
		Time:                 "20:00 UTC",
		Location:             "Paris, France",
		Sport:                "Olympics",
		Image:                "/placeholder.png",
		TicketsAvailable:     2000,
		TicketPrice:          "2.0 CHZ",
		WorkshopActive:       true,
		WorkshopParticipants: 1024,
		Description:          "The grand opening ceremony of the Summer Olympics.",
	},
}

var defaultSubmissions = map[uint][]model.Submission{
	1: {
		{Creator: "SportsMoments", Date: "2024-04-10", Title: "Decisive Dunk", Description: "A stunning slam dunk that turned the tide in Game 7 of the NBA Finals.", Image: "/collectibles/decisive-dunk.png", Votes: 128},
		{Creator: "HoopsArtist", Date: "2024-04-12", Title: "Final Buzzer Beater", Description: "The unforgettable last-second shot that clinched the championship.", Image: "/collectibles/final-buzzer-beater.png", Votes: 97},
		{Creator: "BasketballFanatic", Date: "2024-04-13", Title: "Champions' Celebration", Description: "The team's euphoric celebration after winning the NBA Finals.", Image: "/collectibles/champions-celebration.png", Votes: 76},
	},
	2: {
		{Creator: "EsportsPro", Date: "2024-04-08", Title: "Epic Comeback", Description: "The most incredible comeback in esports history during the championship finals.", Image: "/collectibles/epic-comeback.png", Votes: 234},
		{Creator: "GamingLegend", Date: "2024-04-09", Title: "Perfect Play", Description: "A flawless execution of the most complex strategy ever seen in competitive gaming.", Image: "/collectibles/perfect-play.png", Votes: 189},
		{Creator: "DigitalArtist", Date: "2024-04-11", Title: "Victory Moment", Description: "The emotional moment when the underdog team claimed the world championship.", Image: "/collectibles/victory-moment.png", Votes: 156},
	},
	3: {
		{Creator: "SportsMoments", Date: "2024-04-10", Title: "Decisive Dunk", Description: "A stunning slam dunk that turned the tide in Game 7 of the NBA Finals.", Image: "/collectibles/decisive-dunk.png", Votes: 128},
		{Creator: "HoopsArtist", Date: "2024-04-12", Title: "Final Buzzer Beater", Description: "The unforgettable last-second shot that clinched the championship.", Image: "/collectibles/final-buzzer-beater.png", Votes: 97},
		{Creator: "BasketballFanatic", Date: "2024-04-13", Title: "Champions' Celebration", Description: "The team's euphoric celebration after winning the NBA Finals.", Image: "/collectibles/champions-celebration.png", Votes: 76},
	},
	4: {
		{Creator: "SpeedDemon", Date: "2024-04-07", Title: "Perfect Lap", Description: "The fastest lap ever recorded on the Monaco circuit during qualifying.", Image: "/collectibles/perfect-lap.png", Votes: 312},
		{Creator: "RacingFan", Date: "2024-04-08", Title: "Dramatic Overtake", Description: "An incredible overtaking maneuver on the final corner of the race.", Image: "/collectibles/dramatic-overtake.png", Votes: 245},
		{Creator: "F1Enthusiast", Date: "2024-04-09", Title: "Podium Finish", Description: "The emotional celebration of a first-time podium finisher at Monaco.", Image: "/collectibles/podium-finish.png", Votes: 178},
	},
	5: {
		{Creator: "TennisPro", Date: "2024-04-06", Title: "Match Point", Description: "The incredible match point that decided the Wimbledon final.", Image: "/collectibles/match-point.png", Votes: 267},
		{Creator: "CourtArtist", Date: "2024-04-07", Title: "Perfect Serve", Description: "The fastest serve ever recorded in Wimbledon history.", Image: "/collectibles/perfect-serve.png", Votes: 198},
		{Creator: "TennisFan", Date: "2024-04-08", Title: "Champion's Victory", Description: "The moment when the champion lifted the prestigious trophy.", Image: "/collectibles/champions-victory.png", Votes: 145},
	},
	6: {
		{Creator: "OlympicSpirit", Date: "2024-04-05", Title: "Opening Ceremony", Description: "The breathtaking opening ceremony that kicked off the Olympic Games.", Image: "/collectibles/opening-ceremony.png", Votes: 456},
		{Creator: "GlobalUnity", Date: "2024-04-06", Title: "Parade of Nations", Description: "The beautiful parade of athletes from all participating countries.", Image: "/collectibles/parade-nations.png", Votes: 389},
		{Creator: "OlympicDream", Date: "2024-04-07", Title: "Torch Lighting", Description: "The magical moment when the Olympic flame was lit.", Image: "/collectibles/torch-lighting.png", Votes: 298},
	},
}

func (r repositories) Bootstrap() error {
	count, err := r.eventRepository.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		logrus.Debugf("Store already holds %d events, skipping seed", count)
		return nil
	}

	return r.Transaction(func(repos Repositories) error {
		for _, event := range defaultEvents {
			event.SubmissionCount = len(defaultSubmissions[event.ID])
			if _, err := repos.Event().Create(event); err != nil {
				return err
			}
			for _, sub := range defaultSubmissions[event.ID] {
				seeded, err := repos.Submission().Append(event.ID, sub)
				if err != nil {
					return err
				}
				// Append zeroes the counter; seeded samples keep their
				// shipped totals.
				if sub.Votes != 0 {
					if _, err := repos.Submission().ApplyVoteDelta(event.ID, seeded.Position, sub.Votes); err != nil {
						return err
					}
				}
			}
		}
		logrus.Infof("Seeded %d default events", len(defaultEvents))
		return nil
	})
}
