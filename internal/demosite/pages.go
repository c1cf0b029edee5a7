package demosite

// PageDefinition holds one demo page and the defects it seeds.
type PageDefinition struct {
	Path        string
	Description string
	HTML        string
}

// GetAllPages returns all demo page definitions. Each page deliberately
// seeds a handful of WCAG failures so an audit run has something to find.
func GetAllPages() []PageDefinition {
	return []PageDefinition{
		getHomePage(),
		getProductsPage(),
		getContactPage(),
		getAboutPage(),
	}
}

// ===== HOME PAGE =====
// Seeded defects: images without alt text, empty link, low-contrast text.
func getHomePage() PageDefinition {
	return PageDefinition{
		Path:        "/",
		Description: "Home page with image and link defects",
		HTML: `<!DOCTYPE html>
<html lang="en">
<head>
    <title>Acme Widgets</title>
</head>
<body>
    <h1>Welcome to Acme Widgets</h1>
    <nav>
        <a href="/">Home</a> |
        <a href="/products">Products</a> |
        <a href="/contact">Contact</a> |
        <a href="/about">About</a>
    </nav>
    <img src="/static/hero.png">
    <img src="/static/banner.png">
    <a href="/products"></a>
    <p style="color: #aaaaaa; background-color: #ffffff;">
        The finest widgets on the market, shipped worldwide.
    </p>
</body>
</html>`,
	}
}

// ===== PRODUCTS PAGE =====
// Seeded defects: form inputs without labels, select without a name,
// skipped heading level.
func getProductsPage() PageDefinition {
	return PageDefinition{
		Path:        "/products",
		Description: "Product listing with unlabeled form controls",
		HTML: `<!DOCTYPE html>
<html lang="en">
<head>
    <title>Products - Acme Widgets</title>
</head>
<body>
    <h1>Products</h1>
    <h4>Filter</h4>
    <form action="/products" method="get">
        <input type="text" name="q" placeholder="Search widgets">
        <select name="category">
            <option>All</option>
            <option>Gears</option>
            <option>Sprockets</option>
        </select>
        <input type="submit" value="Go">
    </form>
    <ul>
        <li><a href="/products">Widget Classic</a></li>
        <li><a href="/products">Widget Pro</a></li>
    </ul>
</body>
</html>`,
	}
}

// ===== CONTACT PAGE =====
// Seeded defects: missing lang attribute, unlabeled textarea, button with
// no accessible name.
func getContactPage() PageDefinition {
	return PageDefinition{
		Path:        "/contact",
		Description: "Contact form missing labels and document language",
		HTML: `<!DOCTYPE html>
<html>
<head>
    <title>Contact - Acme Widgets</title>
</head>
<body>
    <h1>Contact Us</h1>
    <form action="/contact" method="post">
        <input type="email" name="email">
        <textarea name="message" rows="5"></textarea>
        <button type="submit"></button>
    </form>
</body>
</html>`,
	}
}

// ===== ABOUT PAGE =====
// Kept mostly clean so graded runs show per-page variance.
func getAboutPage() PageDefinition {
	return PageDefinition{
		Path:        "/about",
		Description: "About page with minimal defects",
		HTML: `<!DOCTYPE html>
<html lang="en">
<head>
    <title>About - Acme Widgets</title>
</head>
<body>
    <h1>About Acme</h1>
    <p>Acme has been making widgets since 1987.</p>
    <img src="/static/factory.png" alt="The Acme factory floor">
    <a href="/">Back to home</a>
</body>
</html>`,
	}
}
