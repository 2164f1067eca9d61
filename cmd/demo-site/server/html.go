package server

import "html/template"

// PageTitle is the document title of every page on the site.
const PageTitle = "Hands-On Selenium WebDriver with Java"

const layoutHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>` + PageTitle + `</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        .display-6 { font-size: 2.5rem; font-weight: 300; }
        .alert { padding: 15px; border-radius: 4px; margin: 20px 0; }
        .alert-success { background: #d4edda; color: #155724; }
        .alert-danger { background: #f8d7da; color: #721c24; }
    </style>
</head>
<body>`

var indexPage = template.Must(template.New("index").Parse(layoutHead + `
    <h1 class="display-4">` + PageTitle + `</h1>
    <h5>Chapter 3. WebDriver Fundamentals</h5>
    <ul>
        <li><a href="login-form.html">Login form</a></li>
    </ul>
</body>
</html>`))

var loginPage = template.Must(template.New("login").Parse(layoutHead + `
    <h1 class="display-6">Login form</h1>
    <form method="post" action="login-form.html">
        <label for="username">Login</label>
        <input type="text" id="username" name="username">
        <label for="password">Password</label>
        <input type="password" id="password" name="password">
        <button type="submit">Submit</button>
    </form>
    {{if .Success}}<div id="success" class="alert alert-success">Login successful</div>{{end}}
    {{if .Invalid}}<div id="invalid" class="alert alert-danger">Invalid credentials</div>{{end}}
</body>
</html>`))
