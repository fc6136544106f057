package seed

import (
	"volunteerhub/pkg/types"
)

// Opportunities returns the fixed built-in set present at startup. Seed
// records are not editable or deletable and their IDs are reserved: a
// submitted opportunity may never reuse one.
//
// This file is the source of truth for the seed set. CurrentSignups here is
// the display baseline; live signups accumulate in the submission ledger.
func Opportunities() []types.Opportunity {
	return []types.Opportunity{
		{
			ID:           "1",
			Title:        "Beach Cleanup Volunteer",
			Image:        "/volunteering.jpg",
			Type:         types.OpportunityTypeEnvironment,
			Location:     types.LocationInPerson,
			Address:      "Dubai, Jumeirah Beach",
			Description:  "Help keep our beaches clean and protect marine life by participating in our monthly beach cleanup events.",
			Organization: "Ocean Conservation Society",
			Duration:     "3-4 hours",
			Commitment:   "Monthly",
			FullDescription: "Join our dedicated team of volunteers in keeping our local beaches clean and safe for both visitors and marine life. " +
				"This hands-on opportunity involves collecting litter, sorting recyclables, and educating beachgoers about ocean conservation. " +
				"No experience required - we provide all necessary equipment and training.",
			Requirements: []string{
				"Comfortable working outdoors",
				"Ability to walk on sand for extended periods",
				"Commitment to environmental protection",
			},
			Benefits: []string{
				"Make a direct impact on ocean health",
				"Meet like-minded environmentalists",
				"Learn about marine conservation",
				"Receive volunteer recognition",
			},
			ContactEmail:   "volunteer@oceanconservation.org",
			ContactPhone:   "(555) 123-4567",
			Date:           "2024-02-15",
			Time:           "09:00 AM - 12:00 PM",
			Capacity:       25,
			CurrentSignups: 12,
		},
		{
			ID:           "2",
			Title:        "Senior Center Reading Program",
			Image:        "/hand.jpg",
			Type:         types.OpportunityTypeElderly,
			Location:     types.LocationInPerson,
			Address:      "Dubai, DIFC",
			Description:  "Share the joy of reading with seniors at our local community center. Help improve their cognitive health and provide companionship.",
			Organization: "Community Care Center",
			Duration:     "1-2 hours",
			Commitment:   "Weekly",
			FullDescription: "Our reading program helps seniors maintain cognitive function and provides much-needed social interaction. " +
				"Volunteers read aloud from books, newspapers, or magazines, and engage in meaningful conversations with participants. " +
				"This is a wonderful opportunity to make a difference in the lives of our elderly community members.",
			Requirements: []string{
				"Patience and empathy",
				"Clear speaking voice",
				"Reliability and punctuality",
				"Background check required",
			},
			Benefits: []string{
				"Build meaningful relationships",
				"Learn from life experiences",
				"Improve communication skills",
				"Make a positive impact on mental health",
			},
			ContactEmail:   "volunteer@communitycare.org",
			ContactPhone:   "(555) 234-5678",
			Date:           "2024-02-20",
			Time:           "02:00 PM - 04:00 PM",
			Capacity:       8,
			CurrentSignups: 5,
		},
		{
			ID:           "3",
			Title:        "Online Tutoring for Students",
			Image:        "/people.jpg",
			Type:         types.OpportunityTypeEducation,
			Location:     types.LocationOnline,
			Address:      "Virtual - Zoom",
			Description:  "Provide academic support to students in need through our virtual tutoring program. Help them succeed in their educational journey.",
			Organization: "Digital Learning Initiative",
			Duration:     "1-1.5 hours",
			Commitment:   "Flexible",
			FullDescription: "Join our online tutoring program to help students who need academic support. Subjects include math, science, English, and history. " +
				"Volunteers work one-on-one with students through video conferencing platforms, providing personalized instruction and encouragement. " +
				"This is a great way to share your knowledge and help students reach their potential.",
			Requirements: []string{
				"Strong academic background",
				"Reliable internet connection",
				"Patience and teaching ability",
				"Background check required",
			},
			Benefits: []string{
				"Flexible scheduling",
				"Develop teaching skills",
				"Make a difference in education",
				"Work from anywhere",
			},
			ContactEmail:   "tutors@digitallearning.org",
			ContactPhone:   "(555) 345-6789",
			Date:           "2024-02-18",
			Time:           "06:00 PM - 08:00 PM",
			Capacity:       15,
			CurrentSignups: 8,
		},
		{
			ID:           "4",
			Title:        "Animal Shelter Care Assistant",
			Image:        "/volunteering.jpg",
			Type:         types.OpportunityTypeAnimals,
			Location:     types.LocationInPerson,
			Address:      "Dubai, Al Barsha",
			Description:  "Help care for animals at our local shelter. Assist with feeding, cleaning, and providing love and attention to animals in need.",
			Organization: "Happy Paws Animal Shelter",
			Duration:     "2-3 hours",
			Commitment:   "Weekly",
			FullDescription: "Our animal shelter relies on dedicated volunteers to help care for dogs, cats, and other animals waiting for their forever homes. " +
				"Volunteers assist with feeding, cleaning kennels, walking dogs, socializing animals, and helping with adoption events. " +
				"This is a rewarding opportunity for animal lovers to make a direct impact on animal welfare.",
			Requirements: []string{
				"Love for animals",
				"Physical ability to handle animals",
				"Reliability and punctuality",
				"Willingness to get dirty",
			},
			Benefits: []string{
				"Work with animals",
				"Learn animal care skills",
				"Help animals find homes",
				"Join a caring community",
			},
			ContactEmail:   "volunteer@happypaws.org",
			ContactPhone:   "(555) 456-7890",
			Date:           "2024-02-22",
			Time:           "10:00 AM - 01:00 PM",
			Capacity:       12,
			CurrentSignups: 7,
		},
		{
			ID:           "5",
			Title:        "Community Garden Maintenance",
			Image:        "/hand.jpg",
			Type:         types.OpportunityTypeCommunity,
			Location:     types.LocationInPerson,
			Address:      "Dubai, Al Qusais",
			Description:  "Help maintain our community garden and teach others about sustainable gardening practices.",
			Organization: "Green Thumb Community",
			Duration:     "2-4 hours",
			Commitment:   "Bi-weekly",
			FullDescription: "Our community garden provides fresh produce for local families and serves as an educational space for sustainable gardening. " +
				"Volunteers help with planting, weeding, harvesting, and maintaining garden infrastructure. " +
				"We also host workshops and educational events for community members of all ages.",
			Requirements: []string{
				"Interest in gardening",
				"Ability to work outdoors",
				"Willingness to learn",
				"Physical stamina",
			},
			Benefits: []string{
				"Learn gardening skills",
				"Connect with community",
				"Enjoy fresh air and exercise",
				"Contribute to food security",
			},
			ContactEmail:   "garden@greenthumb.org",
			ContactPhone:   "(555) 567-8901",
			Date:           "2024-02-25",
			Time:           "08:00 AM - 11:00 AM",
			Capacity:       20,
			CurrentSignups: 14,
		},
		{
			ID:           "6",
			Title:        "Youth Mentoring Program",
			Image:        "/people.jpg",
			Type:         types.OpportunityTypeYouth,
			Location:     types.LocationHybrid,
			Address:      "Dubai, Downtown",
			Description:  "Mentor young people and help them develop life skills, confidence, and positive relationships.",
			Organization: "Future Leaders Foundation",
			Duration:     "1-2 hours",
			Commitment:   "Weekly",
			FullDescription: "Our mentoring program pairs adult volunteers with young people who could benefit from guidance and support. " +
				"Mentors help mentees develop life skills, build confidence, set goals, and make positive choices. " +
				"This program includes both in-person meetings and virtual check-ins, providing flexibility for both mentors and mentees.",
			Requirements: []string{
				"Commitment to youth development",
				"Good communication skills",
				"Reliability and consistency",
				"Background check required",
			},
			Benefits: []string{
				"Make a lasting impact",
				"Develop leadership skills",
				"Learn from young perspectives",
				"Join a supportive community",
			},
			ContactEmail:   "mentor@futureleaders.org",
			ContactPhone:   "(555) 678-9012",
			Date:           "2024-02-28",
			Time:           "04:00 PM - 06:00 PM",
			Capacity:       10,
			CurrentSignups: 6,
		},
	}
}
