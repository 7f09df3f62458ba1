package content

// Defaults returns the built-in seed aggregate. It is used whenever the
// backing store is empty or unreadable, and is what the seed write pushes to
// an empty store. Each call returns a fresh copy.
func Defaults() *Aggregate {
	return defaultAggregate.Clone()
}

var defaultAggregate = &Aggregate{
	Profile: Profile{
		Name:            "Saravanan Ravi",
		FullName:        "Ravichandran Saravanan",
		Title:           "AI Engineer & Data Analyst",
		Bio:             "I build production-ready AI systems, data-driven dashboards, and embedded IoT solutions that turn sensor data into decisions. Experienced with RAG agents, Power BI, ESP32-based IoT, and prompt engineering.",
		Email:           "sarvanrsd@gmail.com",
		LinkedIn:        "https://www.linkedin.com/in/saravananravi17/",
		GitHub:          "https://github.com/Sara-prog10",
		ProfileImageURL: "https://picsum.photos/seed/saravanan-profile/300/300",
		ResumeURL:       "/resume.pdf",
	},
	Skills: []Skill{
		{Name: "Python", Category: "Language"},
		{Name: "Pandas", Category: "Library"},
		{Name: "NumPy", Category: "Library"},
		{Name: "Scikit-learn", Category: "Library"},
		{Name: "Power BI", Category: "Tool"},
		{Name: "Prompt Engineering", Category: "Skill"},
		{Name: "AWS Bedrock", Category: "Cloud"},
		{Name: "SQL", Category: "Database"},
		{Name: "MySQL", Category: "Database"},
		{Name: "BigQuery", Category: "Database"},
		{Name: "ESP32/Arduino", Category: "Hardware"},
		{Name: "OpenCV", Category: "Library"},
		{Name: "Excel", Category: "Tool"},
	},
	Projects: []Project{
		{
			ID:               1,
			Title:            "AI RAG Agent – Fault Reporting & Knowledge Assistant",
			ShortDescription: "Designed and deployed a RAG agent for fault reporting and service queries; integrated n8n workflows, contextual search and Google Sheets for storage.",
			Tech:             []string{"LLMs", "Vector DB", "n8n", "Google Sheets", "FastAPI"},
			ImageURL:         "https://picsum.photos/seed/rag-agent/400/300",
			Tags:             []string{"AI/ML", "Automation"},
		},
		{
			ID:               2,
			Title:            "AI-Powered Virtual Assistant for On-Demand Home Services",
			ShortDescription: "OpenAI API for NLU, STT/TTS integration, OpenCV for image recognition, automated ticketing and scheduling, SQL Server for storage.",
			Tech:             []string{"OpenAI API", "Web Speech", "FastAPI", "OpenCV", "SQL Server"},
			ImageURL:         "https://picsum.photos/seed/virtual-assistant/400/300",
			Tags:             []string{"AI/ML", "Web"},
		},
		{
			ID:               3,
			Title:            "Building Maintenance & Construction Tracking Dashboard",
			ShortDescription: "Power BI dashboard with OneDrive data integration for maintenance & construction tracking.",
			Tech:             []string{"Power BI", "OneDrive", "SQL"},
			ImageURL:         "https://picsum.photos/seed/powerbi-dashboard/400/300",
			Tags:             []string{"Data Viz", "BI"},
		},
		{
			ID:               4,
			Title:            "Indoor Air Quality Monitor (ESP32)",
			ShortDescription: "WiFi-based IAQ monitor using ESP32, CO2/PM/Temp/Humidity sensors, MQTT/HTTP, and Power BI visualisations.",
			Tech:             []string{"ESP32", "MQTT", "Python", "Power BI"},
			ImageURL:         "https://picsum.photos/seed/iot-monitor/400/300",
			Tags:             []string{"IoT", "Data Viz"},
		},
		{
			ID:               5,
			Title:            "Bike Trip Analysis (Tableau)",
			ShortDescription: "SQL-based analysis and Tableau dashboard examining trip patterns and user behaviour.",
			Tech:             []string{"SQL", "Tableau", "Data Analysis"},
			ImageURL:         "https://picsum.photos/seed/tableau-analysis/400/300",
			Tags:             []string{"Data Viz", "BI"},
		},
	},
	Timeline: []TimelineItem{
		{
			ID:           1,
			Type:         TimelineWork,
			Title:        "AI Engineer",
			Organization: "The Intellect, Singapore (Remote)",
			Date:         "May 2024 - Present",
			Description:  "Developing and deploying AI-powered RAG agents and virtual assistants for various business needs.",
		},
		{
			ID:           2,
			Type:         TimelineCertification,
			Title:        "Google Data Analytics Professional Certificate",
			Organization: "Coursera",
			Date:         "April 2024",
			Description:  "Gained practical skills in data analysis through interactive labs, covering the entire data lifecycle.",
		},
		{
			ID:           3,
			Type:         TimelineWork,
			Title:        "Data Science Consultant",
			Organization: "Rubixe, Bangalore",
			Date:         "Oct 2023 - Apr 2024",
			Description:  "Developed ML models, created data pipelines, and built interactive dashboards using Power BI/Tableau.",
		},
		{
			ID:           4,
			Type:         TimelineCertification,
			Title:        "Python Certification",
			Organization: "Guvi",
			Date:         "March 2024",
			Description:  "Completed a structured curriculum on Python, from fundamentals to advanced topics with hands-on projects.",
		},
		{
			ID:           5,
			Type:         TimelineCertification,
			Title:        "Data Science Certification",
			Organization: "Datamites",
			Date:         "February 2024",
			Description:  "Demonstrated proficiency in data analysis, machine learning, and statistical modeling.",
		},
		{
			ID:           6,
			Type:         TimelineWork,
			Title:        "IoT Trainer",
			Organization: "Skill Lync, Chennai",
			Date:         "Aug 2023 - Oct 2023",
			Description:  "Conducted training sessions on IoT, covering ESP32, Raspberry Pi, and microcontroller programming.",
		},
		{
			ID:           7,
			Type:         TimelineEducation,
			Title:        "B.E Information Technology",
			Organization: "Annamalai University, Tamilnadu",
			Date:         "May 2023",
			Description:  "Completed a comprehensive degree program focusing on core principles of information technology and software engineering.",
		},
		{
			ID:           8,
			Type:         TimelineWork,
			Title:        "Firmware Development Intern",
			Organization: "Boodskap IoT, Chennai",
			Date:         "Oct 2022 - Nov 2022",
			Description:  "Developed and optimized firmware for ESP32 in C/C++, focusing on sensor interfacing and LoRa WAN communication.",
		},
	},
	Posts: []Post{
		{
			Slug:    "rag-agent-facility-reporting",
			Title:   "How I built a RAG agent for facility fault reporting",
			Excerpt: "When we needed accurate, contextual answers for recurring facility faults, we built a RAG pipeline that combined a vector store with targeted prompts and workflow automation in n8n...",
			Content: "When we needed accurate, contextual answers for recurring facility faults, we built a RAG pipeline that combined a vector store with targeted prompts and workflow automation in n8n...",
			Date:    "2024-07-15",
		},
		{
			Slug:    "ai-assistant-speech-vision",
			Title:   "Bringing an AI assistant to life — speech + vision + LLMs",
			Excerpt: "Integrating speech-to-text, text-to-speech, and computer vision with large language models opens up a new frontier for interactive and intelligent applications. Here is a breakdown of the architecture...",
			Content: "Integrating speech-to-text, text-to-speech, and computer vision with large language models opens up a new frontier for interactive and intelligent applications. Here is a breakdown of the architecture...",
			Date:    "2024-06-28",
		},
		{
			Slug:    "esp32-air-quality-monitor",
			Title:   "Designing an indoor air quality monitor with ESP32",
			Excerpt: "The ESP32 is a powerful microcontroller perfect for IoT projects. This post details the journey of building a connected air quality monitor, from sensor selection to data visualization...",
			Content: "The ESP32 is a powerful microcontroller perfect for IoT projects. This post details the journey of building a connected air quality monitor, from sensor selection to data visualization...",
			Date:    "2024-05-10",
		},
	},
}
