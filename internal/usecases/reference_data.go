package usecases

import (
	"github.com/volatiletech/null/v8"
	"portfolio.backend/internal/domain/entities"
)

// ReferenceData is the fixed content the seeder ensures exists
type ReferenceData struct {
	Profile         *entities.Profile
	Educations      []*entities.Education
	SkillCategories []*entities.SkillCategory
	Projects        []*entities.Project
	Certifications  []*entities.Certification
}

// DefaultReferenceData returns a fresh copy of the portfolio fixtures on every call
func DefaultReferenceData() *ReferenceData {
	return &ReferenceData{
		Profile: &entities.Profile{
			Name:        "Habib Nidal",
			Title:       "Computer Science Engineer | Python Fullstack Developer | Data Analyst",
			Bio:         "I'm a passionate Computer Science Engineer from Kerala with a deep interest in fullstack development, App developing and data analytics. I love contributing to innovative projects and aim to build robust and smart solutions.",
			Email:       "habibnidal2003@gmail.com",
			Phone:       "+917306020083",
			LinkedInURL: "https://www.linkedin.com/in/habibnidal",
			GithubURL:   "https://github.com/Habibnidal",
		},
		Educations: []*entities.Education{
			{
				Degree:      "B.Tech - Computer Science",
				Institution: "College of Engineering Trikaripur",
				StartYear:   2021,
				EndYear:     null.IntFrom(2025),
				Order:       1,
			},
			{
				Degree:      "HSE",
				Institution: "St Michaels AIHSS Kannur",
				StartYear:   2019,
				EndYear:     null.IntFrom(2021),
				Order:       2,
			},
			{
				Degree:      "SSLC",
				Institution: "St Michaels AIHSS Kannur",
				StartYear:   2019,
				Order:       3,
			},
		},
		SkillCategories: []*entities.SkillCategory{
			category("Languages", 1, "Python", "C", "JavaScript"),
			category("Web Technologies", 2, "HTML", "CSS", "JavaScript", "Flutter"),
			category("Database", 3, "SQL", "SQLAlchemy", "Oracle"),
			category("Tools", 4, "VS Code", "PyCharm", "SQLplus", "Canva", "Excel", "Word", "Power BI"),
			category("Libraries", 5, "NumPy", "Pandas", "React"),
			category("Frameworks", 6, "Django", "Flask", "Tailwind CSS"),
		},
		Projects: []*entities.Project{
			{
				Title:        "College Space Parking Management System",
				Description:  "Developed using HTML, CSS, JS, PHP and MySQL. Handled frontend and presentation duties.",
				Technologies: "HTML, CSS, JavaScript, PHP, MySQL",
				GithubLink:   "https://github.com/Habibnidal/College-Parking-Management",
				Order:        1,
			},
			{
				Title:        "Wearable Emergency Alert System",
				Description:  "Uses Raspberry Pi, GPS, Microphone and Flutter frontend with Flask backend. Created for emergency live monitoring.",
				Technologies: "Raspberry Pi, GPS, Flutter, Flask, Python",
				GithubLink:   "https://github.com/Habibnidal/WEAS",
				Order:        2,
			},
			{
				Title:        "Shopping App for Dresses",
				Description:  "Designed a complete e-commerce web and mobile app with HTML, CSS, JavaScript, Flask, Flutter, deployed on Render",
				Technologies: "HTML, CSS, JavaScript, Flask, Flutter",
				LiveLink:     "https://digidress.onrender.com",
				Order:        3,
			},
		},
		Certifications: []*entities.Certification{
			{Title: "YIP(7.O) District winner for project WEAS", Issuer: "YIP", Order: 1},
			{Title: "Data Mining in python - MES Perinthalmanna Techfest", Issuer: "MES Perinthalmanna", Order: 2},
			{Title: "Temperature & Mask Scan System - National Techfest", Issuer: "National Techfest", Order: 3},
			{Title: "Volunteer - INQUA Techfest", Issuer: "INQUA Techfest", Order: 4},
			{Title: "Volunteer - Reviens 4.0 IEEE", Issuer: "IEEE", Order: 5},
		},
	}
}

func category(name string, order int, skills ...string) *entities.SkillCategory {
	c := &entities.SkillCategory{Name: name, Order: order}
	for _, s := range skills {
		c.Skills = append(c.Skills, &entities.Skill{Name: s})
	}
	return c
}

// DefaultMediaPlan maps the bundled static files onto the reference records
func DefaultMediaPlan() entities.MediaPlan {
	return entities.MediaPlan{
		{Target: entities.MediaTargetProfile, Field: entities.FieldProfileImage, Filename: "port2-removebg-preview.png"},
		{Target: entities.MediaTargetProfile, Field: entities.FieldBackgroundImage, Filename: "back.jpg"},
		{Target: entities.MediaTargetProfile, Field: entities.FieldResume, Filename: "Habib_Nidal_Resume.pdf"},

		{Target: entities.MediaTargetProject, Key: "College Space Parking Management System", Field: entities.FieldVideo, Filename: "IMG_6118.MP4"},
		{Target: entities.MediaTargetProject, Key: "Wearable Emergency Alert System", Field: entities.FieldVideo, Filename: "IMG_6009.mp4"},
		{Target: entities.MediaTargetProject, Key: "Shopping App for Dresses", Field: entities.FieldVideo, Filename: "dressvideo.MOV"},

		{Target: entities.MediaTargetCertification, Key: "YIP(7.O) District winner for project WEAS", Field: entities.FieldCertificateImage, Filename: "yip.jpg"},
		{Target: entities.MediaTargetCertification, Key: "Data Mining in python - MES Perinthalmanna Techfest", Field: entities.FieldCertificateImage, Filename: "IMG_6124.JPG"},
		{Target: entities.MediaTargetCertification, Key: "Temperature & Mask Scan System - National Techfest", Field: entities.FieldCertificateImage, Filename: "IMG_6125.JPG"},
		{Target: entities.MediaTargetCertification, Key: "Volunteer - INQUA Techfest", Field: entities.FieldCertificateImage, Filename: "IMG_6126.JPEG"},
		{Target: entities.MediaTargetCertification, Key: "Volunteer - Reviens 4.0 IEEE", Field: entities.FieldCertificateImage, Filename: "IMG_6127.JPG"},
	}
}
