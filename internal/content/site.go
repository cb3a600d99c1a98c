package content

import "siteprisme.fr/internal/models"

// Portfolio category values.
const (
	CategoryFastFood   = "fast-food"
	CategoryRestaurant = "restaurant"
	CategoryCafe       = "cafe"
	CategoryECommerce  = "e-commerce"
)

// E-commerce stacks offered by the portfolio toggle.
const (
	StackShopify   = "shopify"
	StackWordPress = "wordpress"
)

// Navigation lists the page sections in display order.
var Navigation = []models.NavItem{
	{Name: "Accueil", Href: "#", ID: "home"},
	{Name: "Expertises", Href: "#expertises", ID: "expertises"},
	{Name: "Processus", Href: "#processus", ID: "processus"},
	{Name: "Portfolio", Href: "#portfolio", ID: "portfolio"},
	{Name: "Contact", Href: "#contact", ID: "contact"},
}

// Categories are the portfolio filters, first one selected by default.
var Categories = []models.Category{
	{Name: "Fast Food", Value: CategoryFastFood, Icon: "utensils"},
	{Name: "Restaurant", Value: CategoryRestaurant, Icon: "utensils"},
	{Name: "Café", Value: CategoryCafe, Icon: "coffee"},
	{Name: "E-commerce", Value: CategoryECommerce, Icon: "shopping-cart"},
}

// ECommerceStacks are the choices of the e-commerce toggle, default first.
var ECommerceStacks = []models.Category{
	{Name: "Shopify", Value: StackShopify, Icon: "store"},
	{Name: "WordPress", Value: StackWordPress, Icon: "store"},
}

// HeroFeatures are the highlights under the hero title.
var HeroFeatures = []string{
	"Développement sur mesure",
	"Technologies modernes",
	"Design responsive",
	"Support technique",
}

// Expertises are the service cards.
var Expertises = []models.Expertise{
	{
		ID:           "fast-food",
		Title:        "Fast-Food",
		Subtitle:     "Solutions de commande rapide",
		Description:  "Systèmes de commande en ligne optimisés pour la restauration rapide avec gestion des menus, options de livraison et paiement sécurisé.",
		Features:     []string{"Commande en ligne", "Menu dynamique", "Géolocalisation", "Paiement intégré"},
		Technologies: []string{"React", "Node.js", "Stripe", "MongoDB"},
		Icon:         "utensils",
	},
	{
		ID:           "e-commerce",
		Title:        "E-commerce",
		Subtitle:     "Plateformes de vente en ligne",
		Description:  "Boutiques en ligne complètes avec gestion avancée des stocks, catalogue produits, processus de commande et tableau de bord administrateur.",
		Features:     []string{"Catalogue produits", "Gestion stocks", "Processus commande", "Analytics ventes"},
		Technologies: []string{"Next.js", "Prisma", "Shopify", "GraphQL"},
		Icon:         "shopping-cart",
	},
	{
		ID:           "restaurant",
		Title:        "Restaurant Gastronomique",
		Subtitle:     "Expérience culinaire premium",
		Description:  "Sites vitrines élégants pour restaurants gastronomiques avec réservation en ligne, présentation du chef et menus saisonniers.",
		Features:     []string{"Réservation en ligne", "Galerie photos", "Menus saisonniers", "Présentation du chef"},
		Technologies: []string{"Gatsby", "Contentful", "Calendly", "GSAP"},
		Icon:         "chef-hat",
	},
	{
		ID:           "cafe",
		Title:        "Café / Coffee-Shop",
		Subtitle:     "Ambiance et convivialité",
		Description:  "Plateformes modernes pour coffee shops avec commande à emporter, programme de fidélité et espace communautaire.",
		Features:     []string{"Commande à emporter", "Programme fidélité", "Espace communauté", "Carte des boissons"},
		Technologies: []string{"React", "Sanity", "PWA", "Vue.js"},
		Icon:         "coffee",
	},
}

// Values are the three commitments under the expertise cards.
var Values = []models.Value{
	{Title: "Performance optimisée", Description: "Sites rapides et bien référencés pour une expérience utilisateur optimale", Icon: "zap"},
	{Title: "Sécurité renforcée", Description: "Protection des données clients et transactions sécurisées", Icon: "shield"},
	{Title: "Support continu", Description: "Accompagnement technique et maintenance évolutive", Icon: "headphones"},
}

// Process is the four-step delivery showcase.
var Process = []models.ProcessStep{
	{
		Number:      1,
		Title:       "Analyse & Stratégie",
		Description: "Nous analysons vos besoins, votre marché et définissons ensemble la stratégie digitale la plus adaptée à vos objectifs.",
		Details:     []string{"Audit de l'existant", "Analyse concurrentielle", "Définition des objectifs", "Stratégie UX/UI"},
		Icon:        "search",
	},
	{
		Number:      2,
		Title:       "Design & Prototypage",
		Description: "Création des maquettes et prototypes interactifs en respectant votre identité visuelle et les meilleures pratiques UX.",
		Details:     []string{"Wireframes détaillés", "Design system", "Maquettes interactives", "Tests utilisateurs"},
		Icon:        "palette",
	},
	{
		Number:      3,
		Title:       "Développement",
		Description: "Développement sur mesure avec les technologies les plus adaptées, en respectant les standards de qualité et de performance.",
		Details:     []string{"Code optimisé", "Tests automatisés", "Responsive design", "SEO technique"},
		Icon:        "code",
	},
	{
		Number:      4,
		Title:       "Lancement & Suivi",
		Description: "Mise en ligne, formation et accompagnement continu pour garantir le succès de votre projet sur le long terme.",
		Details:     []string{"Déploiement sécurisé", "Formation équipe", "Monitoring performance", "Support technique"},
		Icon:        "rocket",
	},
}

// ProjectTypes are the choices of the contact form select.
var ProjectTypes = []models.ProjectType{
	{Value: "vitrine", Label: "Site vitrine"},
	{Value: "e-commerce", Label: "E-commerce"},
	{Value: "application", Label: "Application web"},
	{Value: "refonte", Label: "Refonte de site"},
	{Value: "autre", Label: "Autre projet"},
}

// ContactSteps describe what happens after the form is sent.
var ContactSteps = []models.Value{
	{Title: "Échange initial", Description: "Discussion de vos besoins et objectifs", Icon: "message-square"},
	{Title: "Proposition technique", Description: "Solution adaptée avec technologies recommandées", Icon: "file-text"},
	{Title: "Démarrage projet", Description: "Planning et mise en place de l'équipe", Icon: "rocket"},
}

// Footer holds the footer link columns.
var Footer = []models.FooterSection{
	{Title: "Services", Links: []models.FooterLink{
		{Name: "Développement web", Href: "#expertises"},
		{Name: "E-commerce", Href: "#expertises"},
		{Name: "Applications web", Href: "#expertises"},
		{Name: "Refonte de sites", Href: "#expertises"},
	}},
	{Title: "Entreprise", Links: []models.FooterLink{
		{Name: "À propos", Href: "#"},
		{Name: "Nos réalisations", Href: "#portfolio"},
		{Name: "Notre processus", Href: "#processus"},
		{Name: "Contact", Href: "#contact"},
	}},
	{Title: "Ressources", Links: []models.FooterLink{
		{Name: "Blog", Href: "#"},
		{Name: "Documentation", Href: "#"},
		{Name: "Support technique", Href: "#"},
		{Name: "FAQ", Href: "#"},
	}},
	{Title: "Légal", Links: []models.FooterLink{
		{Name: "Mentions légales", Href: "#"},
		{Name: "Politique de confidentialité", Href: "#"},
		{Name: "Conditions générales", Href: "#"},
		{Name: "RGPD", Href: "#"},
	}},
}

// Socials are the footer social links.
var Socials = []models.FooterLink{
	{Name: "Facebook", Href: "#"},
	{Name: "Twitter", Href: "#"},
	{Name: "LinkedIn", Href: "#"},
}

// ContactChannels are the footer contact lines.
var ContactChannels = []models.ContactChannel{
	{Icon: "mail", Text: "contact@siteprisme.fr", Href: "mailto:contact@siteprisme.fr"},
	{Icon: "phone", Text: "06 21 91 83 35", Href: "tel:+33621918335"},
	{Icon: "map-pin", Text: "Strasbourg, France", Href: "#"},
}

// CategoryByName looks a filter up by its display name.
func CategoryByName(name string) (models.Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return models.Category{}, false
}

// CategoryByValue looks a filter up by its catalogue value.
func CategoryByValue(value string) (models.Category, bool) {
	for _, c := range Categories {
		if c.Value == value {
			return c, true
		}
	}
	return models.Category{}, false
}

// IsProjectType reports whether v is one of the contact form choices.
func IsProjectType(v string) bool {
	for _, pt := range ProjectTypes {
		if pt.Value == v {
			return true
		}
	}
	return false
}

// ProjectTypeLabel returns the display label of v, or v itself.
func ProjectTypeLabel(v string) string {
	for _, pt := range ProjectTypes {
		if pt.Value == v {
			return pt.Label
		}
	}
	return v
}
