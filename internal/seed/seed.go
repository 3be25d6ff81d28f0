// Package seed populates an empty database with the starter place catalog
// and reward list so a fresh deployment is immediately usable.
package seed

import (
	"context"
	"fmt"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

// Run inserts the starter catalog. Tables that already contain rows are left
// alone, so restarts never duplicate data.
func Run(ctx context.Context, places *repository.PlaceRepository, rewards *repository.RewardRepository) error {
	hasPlaces, err := places.HasAny(ctx)
	if err != nil {
		return fmt.Errorf("failed to check place catalog: %w", err)
	}
	if !hasPlaces {
		for i := range seedPlaces {
			if err := places.Create(ctx, &seedPlaces[i]); err != nil {
				return fmt.Errorf("failed to seed places: %w", err)
			}
		}
		log.Info().Int("count", len(seedPlaces)).Msg("Seeded place catalog")
	}

	hasRewards, err := rewards.HasAny(ctx)
	if err != nil {
		return fmt.Errorf("failed to check reward catalog: %w", err)
	}
	if !hasRewards {
		for i := range seedRewards {
			if err := rewards.Create(ctx, &seedRewards[i]); err != nil {
				return fmt.Errorf("failed to seed rewards: %w", err)
			}
		}
		log.Info().Int("count", len(seedRewards)).Msg("Seeded reward catalog")
	}

	return nil
}

func ptr[T any](v T) *T { return &v }

var seedPlaces = []models.Place{
	{
		ExternalID:  ptr("cm_1"),
		Name:        "Wat Umong",
		Description: ptr("A peaceful forest temple famous for its ancient tunnels filled with Buddha images."),
		Latitude:    18.783636,
		Longitude:   98.953588,
		ImageURL:    ptr("https://upload.wikimedia.org/wikipedia/commons/thumb/8/8c/Wat_U_Mong_-_panoramio.jpg/1280px-Wat_U_Mong_-_panoramio.jpg"),
		Country:     "Thailand",
		City:        "Chiang Mai",
		Rating:      ptr(4.6),
		Distance:    ptr("~3.2km"),
		Tags:        []string{"Culture", "Green", "PM2.5 free"},
		IsActive:    true,
	},
	{
		ExternalID:  ptr("cm_2"),
		Name:        "Ang Kaew Reservoir",
		Description: ptr("A picturesque reservoir within Chiang Mai University with walking trails and mountain views."),
		Latitude:    18.8020,
		Longitude:   98.9446,
		ImageURL:    ptr("https://upload.wikimedia.org/wikipedia/commons/thumb/4/4c/Ang_Kaew_Reservoir%2C_Chiang_Mai_University.jpg/1280px-Ang_Kaew_Reservoir%2C_Chiang_Mai_University.jpg"),
		Country:     "Thailand",
		City:        "Chiang Mai",
		Rating:      ptr(4.7),
		Distance:    ptr("~3.4km"),
		Tags:        []string{"Green", "PM2.5 free"},
		IsActive:    true,
	},
	{
		ExternalID:  ptr("cm_3"),
		Name:        "Doi Inthanon National Park",
		Description: ptr("The highest mountain in Thailand with waterfalls, cloud forests and twin royal pagodas."),
		Latitude:    18.5884,
		Longitude:   98.4862,
		ImageURL:    ptr("https://upload.wikimedia.org/wikipedia/commons/c/c7/Doi_Inthanon.jpg"),
		Country:     "Thailand",
		City:        "Chiang Mai",
		Rating:      ptr(4.8),
		Distance:    ptr("~60km"),
		Tags:        []string{"Nature", "Green"},
		IsActive:    true,
	},
	{
		ExternalID:  ptr("bkk_1"),
		Name:        "Wat Arun",
		Description: ptr("The Temple of Dawn on the Chao Phraya riverbank, famous for its porcelain-encrusted central prang."),
		Latitude:    13.7437,
		Longitude:   100.4888,
		ImageURL:    ptr("https://upload.wikimedia.org/wikipedia/commons/7/7f/Wat_Arun_from_Chao_Phraya_River.jpg"),
		Country:     "Thailand",
		City:        "Bangkok",
		Rating:      ptr(4.7),
		Distance:    ptr("~2.5km"),
		Tags:        []string{"Culture"},
		IsActive:    true,
	},
	{
		ExternalID:  ptr("bkk_2"),
		Name:        "Grand Palace",
		Description: ptr("The spectacular former royal residence and home of the Emerald Buddha."),
		Latitude:    13.7500,
		Longitude:   100.4913,
		ImageURL:    ptr("https://upload.wikimedia.org/wikipedia/commons/c/cf/Grand_Palace_Bangkok.jpg"),
		Country:     "Thailand",
		City:        "Bangkok",
		Rating:      ptr(4.6),
		Distance:    ptr("~3.0km"),
		Tags:        []string{"Culture"},
		IsActive:    true,
	},
	{
		ExternalID:  ptr("bkk_3"),
		Name:        "Talat Noi",
		Description: ptr("A historic riverside neighborhood full of street art, old machine shops and hidden cafes."),
		Latitude:    13.7329,
		Longitude:   100.5127,
		ImageURL:    ptr("https://upload.wikimedia.org/wikipedia/commons/2/21/Talat_Noi_street_art.jpg"),
		Country:     "Thailand",
		City:        "Bangkok",
		Rating:      ptr(4.5),
		Distance:    ptr("~1.8km"),
		Tags:        []string{"Culture", "City"},
		IsActive:    true,
	},
	{
		ExternalID:  ptr("hkt_1"),
		Name:        "Phuket Old Town",
		Description: ptr("Colorful Sino-Portuguese shophouses, street food and weekend markets."),
		Latitude:    7.8850,
		Longitude:   98.3875,
		ImageURL:    ptr("https://upload.wikimedia.org/wikipedia/commons/0/04/Phuket_Old_Town.jpg"),
		Country:     "Thailand",
		City:        "Phuket",
		Rating:      ptr(4.5),
		Distance:    ptr("~1.0km"),
		Tags:        []string{"Culture", "City"},
		IsActive:    true,
	},
	{
		ExternalID:  ptr("hkt_2"),
		Name:        "Promthep Cape",
		Description: ptr("The southernmost viewpoint of Phuket, famous for its sunsets."),
		Latitude:    7.7625,
		Longitude:   98.3053,
		ImageURL:    ptr("https://upload.wikimedia.org/wikipedia/commons/0/0e/Promthep_Cape_sunset.jpg"),
		Country:     "Thailand",
		City:        "Phuket",
		Rating:      ptr(4.7),
		Distance:    ptr("~18km"),
		Tags:        []string{"Nature"},
		IsActive:    true,
	},
	{
		ExternalID:  ptr("hkt_3"),
		Name:        "Freedom Beach",
		Description: ptr("A secluded white-sand beach reachable only by boat or jungle trail."),
		Latitude:    7.8766,
		Longitude:   98.2766,
		ImageURL:    ptr("https://upload.wikimedia.org/wikipedia/commons/5/5e/Freedom_Beach_Phuket.jpg"),
		Country:     "Thailand",
		City:        "Phuket",
		Rating:      ptr(4.8),
		Distance:    ptr("~12km"),
		Tags:        []string{"Nature", "Green"},
		IsActive:    true,
	},
}

var seedRewards = []models.Reward{
	{
		Name:          "20% Off at Khao Soi Mae Sai",
		Description:   ptr("Enjoy authentic Northern Thai cuisine with 20% off your entire bill"),
		CoinCost:      50,
		Category:      "food",
		DiscountCode:  ptr("YEEP20KHAO"),
		ValidUntil:    ptr("2026-12-31"),
		Location:      ptr("Nimman Road, Chiang Mai"),
		OriginalPrice: ptr("150 THB"),
		IsActive:      true,
	},
	{
		Name:         "Free Coffee at One Nimman",
		Description:  ptr("Redeem a free specialty coffee at any participating cafe in One Nimman"),
		CoinCost:     30,
		Category:     "food",
		DiscountCode: ptr("YEEPFREE"),
		ValidUntil:   ptr("2026-12-31"),
		Location:     ptr("One Nimman, Chiang Mai"),
		IsActive:     true,
	},
	{
		Name:          "Ginger Farm Tour",
		Description:   ptr("Get 50% off organic farm tour including lunch and activities"),
		CoinCost:      100,
		Category:      "experience",
		DiscountCode:  ptr("YEEPFARM50"),
		ValidUntil:    ptr("2026-12-31"),
		Location:      ptr("Ginger Farm, Mae Wang"),
		OriginalPrice: ptr("800 THB"),
		IsActive:      true,
	},
	{
		Name:         "Wat Umong Meditation Session",
		Description:  ptr("Free guided meditation session at the ancient temple tunnels"),
		CoinCost:     80,
		Category:     "experience",
		DiscountCode: ptr("YEEPZEN"),
		ValidUntil:   ptr("2026-12-31"),
		Location:     ptr("Wat Umong, Suthep"),
		IsActive:     true,
	},
	{
		Name:         "Think Park Night Market Voucher",
		Description:  ptr("100 THB shopping voucher for handmade crafts and local goods"),
		CoinCost:     40,
		Category:     "souvenir",
		DiscountCode: ptr("YEEPCRAFT"),
		ValidUntil:   ptr("2026-12-31"),
		Location:     ptr("Think Park, Nimman"),
		IsActive:     true,
	},
	{
		Name:         "Royal Park Bike Rental",
		Description:  ptr("Free 2-hour bicycle rental at Hor Kham Luang Royal Park"),
		CoinCost:     25,
		Category:     "experience",
		DiscountCode: ptr("YEEPBIKE"),
		ValidUntil:   ptr("2026-12-31"),
		Location:     ptr("Royal Agricultural Research Center"),
		IsActive:     true,
	},
}
