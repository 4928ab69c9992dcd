package models

import "time"

// SeedListings returns the static catalog the service boots with. There is
// no backing database for listings; this fixture is the whole inventory.
func SeedListings() []Listing {
	return []Listing{
		{
			ID:          1,
			Name:        "Apartamento acogedor en Medellín",
			Description: "Hermoso apartamento en el corazón de Medellín con vista panorámica a las montañas. Completamente equipado con todo lo que necesitas para una estancia perfecta. Ubicado en el barrio El Poblado, cerca de restaurantes, cafés y transporte público.",
			Images: []string{
				"https://a0.muscache.com/im/pictures/hosting/Hosting-1200061060937602799/original/52a86a8a-e3d1-4dce-ba5b-e944bec72f91.jpeg?im_w=1440",
				"https://a0.muscache.com/im/pictures/hosting/Hosting-1200061060937602799/original/d210ade7-bc0c-4fa5-9da4-744303b53f09.jpeg?im_w=1440",
			},
			City:          "Medellín",
			Country:       "Colombia",
			Coordinates:   Coordinates{Latitude: 6.2442, Longitude: -75.5812},
			GuestCapacity: 4,
			Bedrooms:      2,
			Beds:          2,
			Bathrooms:     2,
			PricePerNight: 120000,
			Amenities:     []string{"WiFi", "Cocina", "TV", "Aire acondicionado", "Estacionamiento"},
			Host: Host{
				Name:      "Carolina Restrepo",
				AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b1c5?w=100&h=100&fit=crop&crop=face",
				Since:     "marzo de 2019",
			},
			Available: true,
			AvailableDates: []DateRange{
				{Start: "2025-02-01", End: "2025-08-28"},
				{Start: "2025-03-15", End: "2025-09-30"},
			},
		},
		{
			ID:          2,
			Name:        "Cabaña rústica en Guatapé",
			Description: "Escápate a esta hermosa cabaña frente al lago en Guatapé. Perfecta para desconectarte y disfrutar de la naturaleza. Incluye kayaks y acceso privado al lago. Ideal para parejas o familias pequeñas que buscan tranquilidad.",
			Images: []string{
				"https://a0.muscache.com/im/pictures/hosting/Hosting-U3RheVN1cHBseUxpc3Rpbmc6NjcwODg2NDQzODEyMzQzMDE4/original/f279b37e-6f52-48cf-892f-fae0b8765c5d.jpeg?im_w=1200",
				"https://a0.muscache.com/im/pictures/miso/Hosting-670886443812343018/original/3c9b5304-9ff4-44f4-a3d4-1a0bee90d97f.jpeg?im_w=1440",
			},
			City:          "Guatapé",
			Country:       "Colombia",
			Coordinates:   Coordinates{Latitude: 6.2329, Longitude: -75.1586},
			GuestCapacity: 6,
			Bedrooms:      3,
			Beds:          3,
			Bathrooms:     2,
			PricePerNight: 200000,
			Amenities:     []string{"WiFi", "Cocina", "Chimenea", "Kayaks", "Jardín privado", "Parrilla"},
			Host: Host{
				Name:      "Miguel Ángel Torres",
				AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
				Since:     "enero de 2020",
			},
			Available: true,
			AvailableDates: []DateRange{
				{Start: "2025-09-10", End: "2025-10-30"},
			},
		},
		{
			ID:            3,
			Name:          "Loft moderno en Bogotá",
			Description:   "Loft de diseño contemporáneo en la Zona Rosa de Bogotá. Perfectamente ubicado para explorar la vida nocturna, restaurantes gourmet y centros comerciales. Decorado con arte local y muebles de diseñador.",
			City:          "Bogotá",
			Country:       "Colombia",
			Coordinates:   Coordinates{Latitude: 4.6097, Longitude: -74.0817},
			GuestCapacity: 2,
			Bedrooms:      1,
			Beds:          1,
			Bathrooms:     1,
			PricePerNight: 180000,
			Amenities:     []string{"WiFi", "Cocina", "TV", "Aire acondicionado", "Gimnasio", "Terraza"},
			Host: Host{
				Name:  "Alejandra Martínez",
				Since: "septiembre de 2021",
			},
			Available: true,
			AvailableDates: []DateRange{
				{Start: "2025-08-01", End: "2025-11-30"},
			},
		},
		{
			ID:            4,
			Name:          "Casa colonial en Cartagena",
			Description:   "Encantadora casa colonial en el centro histórico de Cartagena. Con patios internos, arquitectura original y todas las comodidades modernas. A pocos pasos de las murallas y la vida nocturna del centro.",
			City:          "Cartagena",
			Country:       "Colombia",
			Coordinates:   Coordinates{Latitude: 10.3910, Longitude: -75.4794},
			GuestCapacity: 8,
			Bedrooms:      4,
			Beds:          4,
			Bathrooms:     3,
			PricePerNight: 350000,
			Amenities:     []string{"WiFi", "Cocina", "TV", "Aire acondicionado", "Patio", "Piscina", "Servicio de limpieza"},
			Host: Host{
				Name:  "Ricardo Mendoza",
				Since: "junio de 2018",
			},
			Available: true,
			AvailableDates: []DateRange{
				{Start: "2025-07-01", End: "2025-09-30"},
			},
		},
		{
			ID:            5,
			Name:          "Apartamento frente al mar en Santa Marta",
			Description:   "Despierta con vista al mar Caribe en este moderno apartamento. Balcón con vista panorámica, piscina en la azotea y acceso directo a la playa. Perfecto para unas vacaciones relajantes.",
			City:          "Santa Marta",
			Country:       "Colombia",
			Coordinates:   Coordinates{Latitude: 11.2408, Longitude: -74.2120},
			GuestCapacity: 4,
			Bedrooms:      2,
			Beds:          2,
			Bathrooms:     2,
			PricePerNight: 280000,
			Amenities:     []string{"WiFi", "Cocina", "TV", "Aire acondicionado", "Piscina", "Acceso a playa", "Balcón"},
			Host: Host{
				Name:  "Sofia Valencia",
				Since: "febrero de 2020",
			},
			Available: true,
			AvailableDates: []DateRange{
				{Start: "2025-02-15", End: "2025-08-31"},
			},
		},
		{
			ID:            6,
			Name:          "Finca campestre en el Eje Cafetero",
			Description:   "Vive la experiencia auténtica del café colombiano en esta hermosa finca. Tours de café incluidos, cabalgatas, y la tranquilidad del campo. Ideal para familias y grupos que buscan aventura.",
			City:          "Salento",
			Country:       "Colombia",
			Coordinates:   Coordinates{Latitude: 4.6319, Longitude: -75.5714},
			GuestCapacity: 10,
			Bedrooms:      5,
			Beds:          6,
			Bathrooms:     4,
			PricePerNight: 150000,
			Amenities:     []string{"WiFi", "Cocina", "Chimenea", "Tours de café", "Cabalgatas", "Jardín", "Parrilla", "Hamacas"},
			Host: Host{
				Name:  "Carlos Henao",
				Since: "abril de 2017",
			},
			Available: true,
			AvailableDates: []DateRange{
				{Start: "2025-02-01", End: "2025-12-31"},
			},
		},
	}
}

// SeedReviews returns the reviews each listing starts the session with,
// keyed by listing id, most recent first.
func SeedReviews() map[int][]Review {
	return map[int][]Review{
		1: {
			{
				ID:              1,
				ListingID:       1,
				AuthorID:        "user1",
				AuthorName:      "María González",
				AuthorAvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
				CategoryScores: map[RatingCategory]int{
					CategoryCleanliness:   5,
					CategoryCommunication: 5,
					CategoryCheckin:       4,
					CategoryAccuracy:      5,
					CategoryLocation:      5,
					CategoryValue:         4,
				},
				OverallScore: 5,
				Comment:      "¡Excelente apartamento! La ubicación es perfecta, muy cerca de todo lo que necesitas en El Poblado. Carolina fue muy atenta y nos dio excelentes recomendaciones.",
				StayedAt:     "2024-11-15",
				SubmittedAt:  time.Date(2024, 11, 22, 0, 0, 0, 0, time.UTC),
				HostReply: &HostReply{
					Date:  "2024-11-23",
					Reply: "¡Muchas gracias María! Fue un placer hospedarlos. ¡Los esperamos de vuelta pronto!",
				},
				HelpfulCount: 8,
			},
			{
				ID:              2,
				ListingID:       1,
				AuthorID:        "user2",
				AuthorName:      "Carlos Ramírez",
				AuthorAvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
				CategoryScores: map[RatingCategory]int{
					CategoryCleanliness:   5,
					CategoryCommunication: 4,
					CategoryCheckin:       4,
					CategoryAccuracy:      4,
					CategoryLocation:      5,
					CategoryValue:         4,
				},
				OverallScore: 4,
				Comment:      "Muy buen lugar, cómodo y bien ubicado. El proceso de check-in fue sencillo. Solo un pequeño inconveniente con el aire acondicionado que se resolvió rápidamente.",
				StayedAt:     "2024-10-20",
				SubmittedAt:  time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC),
				HelpfulCount: 5,
			},
			{
				ID:              3,
				ListingID:       1,
				AuthorID:        "user3",
				AuthorName:      "Ana Sofía Vargas",
				AuthorAvatarURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop&crop=face",
				CategoryScores: map[RatingCategory]int{
					CategoryCleanliness:   5,
					CategoryCommunication: 5,
					CategoryCheckin:       5,
					CategoryAccuracy:      5,
					CategoryLocation:      5,
					CategoryValue:         5,
				},
				OverallScore: 5,
				Comment:      "Perfecto en todos los aspectos. Carolina es una anfitriona increíble, muy comunicativa y dispuesta a ayudar. ¡Altamente recomendado!",
				StayedAt:     "2024-09-10",
				SubmittedAt:  time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
				HostReply: &HostReply{
					Date:  "2024-09-16",
					Reply: "¡Qué alegría leer tu comentario Ana Sofía! ¡Siempre serán bienvenidos!",
				},
				HelpfulCount: 12,
			},
		},
		2: {
			{
				ID:              4,
				ListingID:       2,
				AuthorID:        "user4",
				AuthorName:      "Diego Morales",
				AuthorAvatarURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face",
				CategoryScores: map[RatingCategory]int{
					CategoryCleanliness:   5,
					CategoryCommunication: 5,
					CategoryCheckin:       5,
					CategoryAccuracy:      5,
					CategoryLocation:      5,
					CategoryValue:         5,
				},
				OverallScore: 5,
				Comment:      "¡Increíble experiencia en Guatapé! La cabaña es hermosa, muy cómoda y la vista al lago es de ensueño. Los kayaks fueron el toque perfecto.",
				StayedAt:     "2024-08-15",
				SubmittedAt:  time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC),
				HostReply: &HostReply{
					Date:  "2024-08-21",
					Reply: "¡Muchas gracias Diego! Me alegra saber que disfrutaron tanto de la cabaña y del lago.",
				},
				HelpfulCount: 15,
			},
			{
				ID:              5,
				ListingID:       2,
				AuthorID:        "user5",
				AuthorName:      "Valentina Castro",
				AuthorAvatarURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop&crop=face",
				CategoryScores: map[RatingCategory]int{
					CategoryCleanliness:   5,
					CategoryCommunication: 4,
					CategoryCheckin:       5,
					CategoryAccuracy:      5,
					CategoryLocation:      5,
					CategoryValue:         4,
				},
				OverallScore: 5,
				Comment:      "Lugar mágico para desconectarse. Las vistas son espectaculares y poder usar los kayaks fue fantástico. Definitivamente volveremos.",
				StayedAt:     "2024-07-10",
				SubmittedAt:  time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
				HelpfulCount: 9,
			},
		},
	}
}
